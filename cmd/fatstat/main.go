package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/skredler/fatstat"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	app := &cli.App{
		Name:            "fatstat",
		Usage:           "dump the geometry and every directory entry of a raw FAT32 image",
		ArgsUsage:       "IMAGE",
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
		},
		Action: func(c *cli.Context) error {
			if c.Bool("verbose") {
				log.SetLevel(logrus.DebugLevel)
			}
			if c.NArg() != 1 {
				fmt.Fprintf(os.Stderr, "usage:\n\t%s IMAGE\n", c.App.Name)
				return nil
			}
			return run(log, c.Args().First())
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(log *logrus.Logger, path string) error {
	session, err := fatstat.Open(path)
	if err != nil {
		return err
	}
	defer session.Close()

	geo := session.Geometry()
	log.WithFields(logrus.Fields{
		"image":            path,
		"total_sectors":    geo.TotalSectors,
		"bytes_per_sector": geo.BytesPerSector,
	}).Debug("volume opened")

	doc, err := json.MarshalIndent(geo, "", "    ")
	if err != nil {
		return err
	}
	fmt.Println(string(doc))

	entries, err := session.Entries()
	if err != nil {
		return err
	}
	log.WithField("entries", len(entries)).Debug("directory walk finished")

	for _, entry := range entries {
		line, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		fmt.Println(string(line))
	}

	return nil
}
