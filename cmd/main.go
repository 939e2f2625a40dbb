package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dargueta/rlekit/gentables"
	"github.com/dargueta/rlekit/rle"
	"github.com/dargueta/rlekit/suite"
	"github.com/urfave/cli/v2"
)

func main() {
	cli := cli.App{
		Usage: "Work with legacy run-length encoded data formats",
		Commands: []*cli.Command{
			{
				Name:   "variants",
				Usage:  "List supported RLE variants",
				Action: listVariants,
			},
			{
				Name:      "ops",
				Usage:     "Print the operation decode table for a variant",
				Action:    showOps,
				ArgsUsage: "VARIANT",
			},
			{
				Name:      "gen",
				Usage:     "Generate Go lookup tables for a variant",
				Action:    generateTables,
				ArgsUsage: "VARIANT",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "package",
						Usage: "package name for the generated file",
						Value: "rle",
					},
					&cli.StringFlag{
						Name:  "output",
						Usage: "write to this file instead of stdout",
					},
				},
			},
			{
				Name:      "compress",
				Usage:     "Run-length encode a file",
				Action:    compressFile,
				ArgsUsage: "INPUT_FILE  OUTPUT_FILE",
				Flags:     []cli.Flag{variantFlag()},
			},
			{
				Name:      "decompress",
				Usage:     "Expand a run-length encoded file",
				Action:    decompressFile,
				ArgsUsage: "INPUT_FILE  OUTPUT_FILE",
				Flags:     []cli.Flag{variantFlag()},
			},
			{
				Name:      "check",
				Usage:     "Run a CSV conformance suite against the codecs",
				Action:    runSuite,
				ArgsUsage: "SUITE_FILE",
			},
		},
	}

	err := cli.Run(os.Args)
	if err != nil {
		log.Fatalf("fatal error: %s", err.Error())
	}
}

func variantFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "variant",
		Usage:    "RLE variant to use; see the `variants` command",
		Required: true,
	}
}

func lookupVariant(name string) (rle.Variant, error) {
	v, ok := rle.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("no such variant %q; valid names are %v", name, rle.Names())
	}
	return v, nil
}

func listVariants(context *cli.Context) error {
	for _, name := range rle.Names() {
		fmt.Println(name)
	}
	return nil
}

func showOps(context *cli.Context) error {
	if context.NArg() != 1 {
		return fmt.Errorf("expected exactly one variant name, got %d arguments", context.NArg())
	}
	v, err := lookupVariant(context.Args().Get(0))
	if err != nil {
		return err
	}
	return gentables.Build(v).WriteReport(os.Stdout)
}

func generateTables(context *cli.Context) error {
	if context.NArg() != 1 {
		return fmt.Errorf("expected exactly one variant name, got %d arguments", context.NArg())
	}
	v, err := lookupVariant(context.Args().Get(0))
	if err != nil {
		return err
	}

	table := gentables.Build(v)
	if err := table.Verify(v); err != nil {
		return err
	}

	output := os.Stdout
	if path := context.String("output"); path != "" {
		output, err = os.Create(path)
		if err != nil {
			return err
		}
		defer output.Close()
	}
	return table.WriteGo(output, context.String("package"))
}

func compressFile(context *cli.Context) error {
	return transformFile(context, func(v rle.Variant, src []byte) ([]byte, error) {
		dest := make([]byte, rle.Compress(v, src, nil))
		rle.Compress(v, src, dest)
		return dest, nil
	})
}

func decompressFile(context *cli.Context) error {
	return transformFile(context, func(v rle.Variant, src []byte) ([]byte, error) {
		size, err := rle.Decompress(v, src, nil)
		if err != nil {
			return nil, err
		}
		dest := make([]byte, size)
		if _, err := rle.Decompress(v, src, dest); err != nil {
			return nil, err
		}
		return dest, nil
	})
}

func transformFile(
	context *cli.Context, transform func(rle.Variant, []byte) ([]byte, error),
) error {
	if context.NArg() != 2 {
		return fmt.Errorf("expected input and output file paths, got %d arguments", context.NArg())
	}
	v, err := lookupVariant(context.String("variant"))
	if err != nil {
		return err
	}

	src, err := os.ReadFile(context.Args().Get(0))
	if err != nil {
		return err
	}
	dest, err := transform(v, src)
	if err != nil {
		return err
	}
	if err := os.WriteFile(context.Args().Get(1), dest, 0o644); err != nil {
		return err
	}

	fmt.Printf("%d bytes in, %d bytes out\n", len(src), len(dest))
	return nil
}

func runSuite(context *cli.Context) error {
	if context.NArg() != 1 {
		return fmt.Errorf("expected exactly one suite file, got %d arguments", context.NArg())
	}
	cases, err := suite.LoadFile(context.Args().Get(0))
	if err != nil {
		return err
	}
	if err := suite.RunAll(cases); err != nil {
		return err
	}
	fmt.Printf("all %d cases passed\n", len(cases))
	return nil
}
