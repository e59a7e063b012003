package main

import (
	"context"
	"fmt"
	"iter"
	"log"
	"time"

	"github.com/jdossgollin/climate-data/internal/config"
	"github.com/jdossgollin/climate-data/internal/naming"
	"github.com/jdossgollin/climate-data/internal/snapshot"
)

var cmdProduct = &Command{
	UsageLine: "product -time T",
	Short:     "print the product name covering a timestamp",
	Long: `
Product prints the name of the archive product that covers the given hour.
Times before the first configured era are reported as out of coverage.
	`,
}

var cmdNames = &Command{
	UsageLine: "names -start T -end T [-kind gz|raw|nc] [-root dir] [-bbox name] [-all]",
	Short:     "print local file names for a range of snapshots",
	Long: `
Names prints the local path of every valid snapshot between -start and -end,
one per line. Known missing snapshots are left out unless -all is given.

The -kind flag selects the compressed GRIB2 (gz, the default), uncompressed
GRIB2 (raw) or NetCDF subset (nc) projection. Without -root, paths are placed
under storage.root, or storage.derivedRoot for NetCDF subsets.
	`,
}

var cmdURLs = &Command{
	UsageLine: "urls -start T -end T",
	Short:     "print archive URLs for a range of snapshots",
	Long: `
URLs prints the remote location of every valid snapshot between -start and
-end, one per line.
	`,
}

var cmdDecode = &Command{
	UsageLine: "decode name...",
	Short:     "recover timestamps and URLs from file names",
	Long: `
Decode prints the embedded timestamp and the archive URL of each named file,
separated by a tab. Directories in front of the name are ignored.
	`,
}

var (
	productTime string

	namesRange rangeFlags
	namesKind  string
	namesRoot  string
	namesBBox  string
	namesAll   bool

	urlsRange rangeFlags
)

func init() {
	cmdProduct.Run = runProduct
	cmdProduct.Flag.StringVar(&productTime, "time", "", "snapshot `time`")

	cmdNames.Run = runNames
	namesRange.register(&cmdNames.Flag)
	cmdNames.Flag.StringVar(&namesKind, "kind", "gz", "name `kind`: gz, raw or nc")
	cmdNames.Flag.StringVar(&namesRoot, "root", "", "root `directory` of the names")
	cmdNames.Flag.StringVar(&namesBBox, "bbox", "", "bounding box `name` for NetCDF subsets")
	cmdNames.Flag.BoolVar(&namesAll, "all", false, "include snapshots known to be missing")

	cmdURLs.Run = runURLs
	urlsRange.register(&cmdURLs.Flag)

	cmdDecode.Run = runDecode
}

func runProduct(ctx context.Context, cmd *Command, args []string) {
	if productTime == "" {
		cmd.Usage()
	}
	cfg := loadConfig()
	codec := mustCodec(cfg)

	t, err := parseFlagTime("time", productTime)
	if err != nil {
		log.Fatal(err)
	}
	product, err := codec.Product(t)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(product)
}

func runNames(ctx context.Context, cmd *Command, args []string) {
	cfg := loadConfig()
	codec := mustCodec(cfg)
	tr := mustRange(cfg, &namesRange)

	kind, err := naming.ParseKind(namesKind)
	if err != nil {
		log.Fatal(err)
	}
	root, bbox := namesRoot, namesBBox
	if root == "" {
		root = cfg.Storage.Root
		if kind == naming.Derived {
			root = cfg.Storage.DerivedRoot
		}
	}
	if bbox == "" {
		bbox = cfg.Storage.BBox
	}

	seq := tr.Valid()
	if namesAll {
		seq = tr.All()
	}
	printEach(ctx, seq, func(t time.Time) (string, error) {
		return codec.Name(kind, t, root, bbox)
	})
}

func runURLs(ctx context.Context, cmd *Command, args []string) {
	cfg := loadConfig()
	codec := mustCodec(cfg)
	tr := mustRange(cfg, &urlsRange)

	printEach(ctx, tr.Valid(), codec.URL)
}

func runDecode(ctx context.Context, cmd *Command, args []string) {
	if len(args) == 0 {
		cmd.Usage()
	}
	cfg := loadConfig()
	codec := mustCodec(cfg)

	for _, name := range args {
		t, err := codec.Decode(name)
		if err != nil {
			log.Print(err)
			setExitStatus(1)
			continue
		}
		url, err := codec.URL(t)
		if err != nil {
			log.Print(err)
			setExitStatus(1)
			continue
		}
		fmt.Printf("%s\t%s\n", t.Format(time.DateTime), url)
	}
}

// printEach prints format(t) for each t in seq, stopping early when ctx is
// cancelled or format fails.
func printEach(ctx context.Context, seq iter.Seq[time.Time], format func(time.Time) (string, error)) {
	for t := range seq {
		if ctx.Err() != nil {
			setExitStatus(1)
			return
		}
		s, err := format(t)
		if err != nil {
			log.Print(err)
			setExitStatus(1)
			return
		}
		fmt.Println(s)
	}
}

func mustCodec(cfg *config.Config) naming.Codec {
	codec, err := cfg.Codec()
	if err != nil {
		log.Fatal(err)
	}
	return codec
}

func mustRange(cfg *config.Config, f *rangeFlags) snapshot.TimeRange {
	v, err := cfg.Validator()
	if err != nil {
		log.Fatal(err)
	}
	tr, err := f.build(v)
	if err != nil {
		log.Fatal(err)
	}
	return tr
}
