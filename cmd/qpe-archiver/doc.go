/*
Qpe-archiver addresses and files snapshots of the hourly multi-sensor
quantitative precipitation estimate (QPE) archive.

Usage:

	qpe-archiver [-config file] command [arguments]

The commands are:

	product     print the product name covering a timestamp
	names       print local file names for a range of snapshots
	urls        print archive URLs for a range of snapshots
	decode      recover timestamps and URLs from file names
	plan        list snapshots in a range that are not stored locally
	file        move downloads from the incoming directory into the archive
	watch       keep filing downloads as they arrive

Use "qpe-archiver help [command]" for more information about a command.

Configuration is read from config.yaml in the working directory when it
exists, from the file named by -config otherwise. QPE_* environment variables
and a .env file override individual settings.
*/
package main
