// Writes the iOS launch artwork as an asset catalog imageset: the
// rendered master PNG next to the Contents.json describing it.
package ios

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// MasterSize is the square master edge used for the universal
// launch image.
const MasterSize = 1024

// Image is one entry of the images array in a Contents.json.
type Image struct {
	Idiom    string `json:"idiom"`
	FileName string `json:"filename"`
	Scale    string `json:"scale"`
}

// Info identifies the catalog writer to Xcode.
type Info struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

// Contents models an asset catalog Contents.json.
type Contents struct {
	Images []Image `json:"images"`
	Info   Info    `json:"info"`
}

// WriteImageset creates <dir>/<name>.imageset holding pngData and a
// single universal 1x Contents.json entry for it. name must already
// be filesystem-safe. The paths written are returned.
func WriteImageset(dir, name string, pngData []byte) ([]string, error) {
	setDir := filepath.Join(dir, name+".imageset")
	if err := os.MkdirAll(setDir, 0o755); err != nil {
		return nil, err
	}

	pngName := name + ".png"
	pngPath := filepath.Join(setDir, pngName)
	if err := os.WriteFile(pngPath, pngData, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %s", pngPath, err)
	}

	contents := Contents{
		Images: []Image{{Idiom: "universal", FileName: pngName, Scale: "1x"}},
		Info:   Info{Author: "xcode", Version: 1},
	}
	data, err := json.MarshalIndent(contents, "", "  ")
	if err != nil {
		return nil, err
	}
	jsonPath := filepath.Join(setDir, "Contents.json")
	if err := os.WriteFile(jsonPath, append(data, '\n'), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %s", jsonPath, err)
	}
	return []string{pngPath, jsonPath}, nil
}
