package render

import (
	"fmt"
	"os"
	"path/filepath"
)

// Assets are the static files inlined into every generated page. The theme
// stylesheet is not among them: it is generated from the chroma style.
type Assets struct {
	ResetCSS string
	DiffCSS  string
	DOMJS    string
	DiffJS   string
}

// LoadAssets reads the asset files from dir. Any missing file is an error:
// the page would be structurally broken without it.
func LoadAssets(dir string) (Assets, error) {
	var a Assets
	for _, f := range []struct {
		name string
		dst  *string
	}{
		{"reset.css", &a.ResetCSS},
		{"diff.css", &a.DiffCSS},
		{"dom.js", &a.DOMJS},
		{"diff.js", &a.DiffJS},
	} {
		path := filepath.Join(dir, f.name)
		data, err := os.ReadFile(path)
		if err != nil {
			return Assets{}, fmt.Errorf("read asset %s: %w", path, err)
		}
		*f.dst = string(data)
	}
	return a, nil
}
