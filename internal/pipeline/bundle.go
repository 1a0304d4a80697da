package pipeline

import (
	"archive/zip"
	"fmt"
	"io"
)

// Archive layout of a comparison run.
const (
	CleanedFile1Path  = "cleaned/Cleaned_File1.xlsx"
	CleanedFile2Path  = "cleaned/Cleaned_File2.xlsx"
	NewItemsPath      = "comparison/New_Items.xlsx"
	InactiveItemsPath = "comparison/Inactive_Items.xlsx"

	BundleName = "Comparison_Output.zip"
)

type OutputFile struct {
	Path string
	Data []byte
}

// WriteZip writes files, deflated, in the given order.
func WriteZip(w io.Writer, files []OutputFile) error {
	zw := zip.NewWriter(w)
	for _, file := range files {
		fw, err := zw.Create(file.Path)
		if err != nil {
			_ = zw.Close()
			return fmt.Errorf("zip %s: %w", file.Path, err)
		}
		if _, err := fw.Write(file.Data); err != nil {
			_ = zw.Close()
			return fmt.Errorf("zip %s: %w", file.Path, err)
		}
	}
	return zw.Close()
}
