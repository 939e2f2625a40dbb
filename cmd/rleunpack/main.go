package main

import (
	"fmt"
	"os"

	"github.com/dargueta/rlekit/rle"
)

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintf(
			os.Stderr,
			"Uncompress a file using RLE and gzip.\nUsage: %s variant input-file output-file\n",
			os.Args[0])
		os.Exit(1)
	}

	variantName := os.Args[1]
	sourceFilePath := os.Args[2]
	outputFilePath := os.Args[3]

	variant, ok := rle.Lookup(variantName)
	if !ok {
		fmt.Fprintf(os.Stderr, "No such variant: `%v`\n", variantName)
		os.Exit(1)
	}

	sourceFile, errSrc := os.Open(sourceFilePath)
	if errSrc != nil {
		fmt.Fprintf(
			os.Stderr, "Failed to open file for reading: `%v`: %s\n", sourceFilePath, errSrc)
		os.Exit(1)
	}
	defer sourceFile.Close()

	outFile, errOut := os.Create(outputFilePath)
	if errOut != nil {
		fmt.Fprintf(
			os.Stderr, "Failed to open file for writing: `%v`: %s\n", outputFilePath, errOut)
		os.Exit(1)
	}
	defer outFile.Close()

	nWritten, err := rle.DecompressArchive(variant, sourceFile, outFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error expanding file: %s\n", err)
		os.Exit(2)
	}

	fmt.Printf("Expanded input file to %d bytes.\n", nWritten)
}
