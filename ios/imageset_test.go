package ios

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteImageset(t *testing.T) {
	dir := t.TempDir()
	pngData := []byte("\x89PNG fake payload")

	paths, err := WriteImageset(dir, "splash", pngData)
	if err != nil {
		t.Fatalf("can't write imageset: %s", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 files, got %v", paths)
	}

	got, err := os.ReadFile(filepath.Join(dir, "splash.imageset", "splash.png"))
	if err != nil {
		t.Fatalf("missing png: %s", err)
	}
	if string(got) != string(pngData) {
		t.Error("png payload was altered")
	}

	raw, err := os.ReadFile(filepath.Join(dir, "splash.imageset", "Contents.json"))
	if err != nil {
		t.Fatalf("missing Contents.json: %s", err)
	}
	var c Contents
	if err := json.Unmarshal(raw, &c); err != nil {
		t.Fatalf("Contents.json is not valid json: %s", err)
	}
	if len(c.Images) != 1 {
		t.Fatalf("expected exactly one image entry, got %d", len(c.Images))
	}
	img := c.Images[0]
	if img.Idiom != "universal" || img.Scale != "1x" || img.FileName != "splash.png" {
		t.Errorf("unexpected image entry %+v", img)
	}
	if c.Info.Author != "xcode" || c.Info.Version != 1 {
		t.Errorf("unexpected info block %+v", c.Info)
	}
}
