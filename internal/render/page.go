package render

import (
	"fmt"
	"html/template"
	"strings"
)

const (
	PageWidthFixed = "page-80-width"
	PageWidthFull  = "page-full-width"
)

// PageData is everything the page template needs: the chrome strings, the
// inlined assets and the two pane fragments.
type PageData struct {
	Title     string
	PageWidth string
	ResetCSS  template.CSS
	DiffCSS   template.CSS
	ThemeCSS  template.CSS
	DOMJS     template.JS
	DiffJS    template.JS
	Left      template.HTML
	Right     template.HTML
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html class="no-js">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<meta name="description" content="">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="mobile-web-app-capable" content="yes">
<style>{{.ResetCSS}}</style>
<style>{{.DiffCSS}}</style>
<style>{{.ThemeCSS}}</style>
</head>
<body>
<div id="topbar">
  <div id="filetitle">{{.Title}}</div>
  <div class="switches">
    <div class="switch">
      <input id="showoriginal" class="toggle menuoption" type="checkbox" checked>
      <label for="showoriginal">Original</label>
    </div>
    <div class="switch">
      <input id="showmodified" class="toggle menuoption" type="checkbox" checked>
      <label for="showmodified">Modified</label>
    </div>
    <div class="switch">
      <input id="highlight" class="toggle menuoption" type="checkbox" checked>
      <label for="highlight">Highlight</label>
    </div>
    <div class="switch">
      <input id="codeprintmargin" class="toggle menuoption" type="checkbox" checked>
      <label for="codeprintmargin">Margin</label>
    </div>
    <div class="switch">
      <input id="dosyntaxhighlight" class="toggle menuoption" type="checkbox" checked>
      <label for="dosyntaxhighlight">Syntax</label>
    </div>
  </div>
</div>
<div id="maincontainer" class="{{.PageWidth}}">
  <div id="leftcode" class="codebox">
    <div class="codefiletab">&#10092; Original</div>
    <div class="printmargin">01234567890123456789012345678901234567890123456789012345678901234567890123456789</div>
    {{.Left}}
  </div>
  <div id="rightcode" class="codebox">
    <div class="codefiletab">&#10093; Modified</div>
    <div class="printmargin">01234567890123456789012345678901234567890123456789012345678901234567890123456789</div>
    {{.Right}}
  </div>
</div>
<script>{{.DOMJS}}</script>
<script>{{.DiffJS}}</script>
</body>
</html>
`))

// Page executes the page template fully in memory so that nothing is
// written when any part of the render fails.
func Page(data PageData) ([]byte, error) {
	if data.PageWidth == "" {
		data.PageWidth = PageWidthFull
	}
	var b strings.Builder
	if err := pageTemplate.Execute(&b, data); err != nil {
		return nil, fmt.Errorf("execute page template: %w", err)
	}
	return []byte(b.String()), nil
}
