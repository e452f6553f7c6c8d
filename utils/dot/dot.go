package dot

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/goccy/go-graphviz"
)

// location of the dot executable used as a fallback renderer.
// It's usually at: /usr/bin/dot
var dotExe string

// dotToImageExe renders with the external 'dot' utility, returning the filepath.
func dotToImageExe(outfname string, format string, dot []byte) (string, error) {
	if dotExe == "" {
		exe, err := exec.LookPath("dot")
		if err != nil {
			log.Fatalln("unable to find program 'dot', please install it or check your PATH")
		}
		dotExe = exe
	}

	var basepath string
	if outfname == "" {
		basepath = filepath.Join(os.TempDir(), "strictness_export.")
	} else {
		basepath = fmt.Sprintf("%s.", outfname)
	}

	img := basepath + format
	cmd := exec.Command(dotExe, fmt.Sprintf("-T%s", format), "-o", img)
	cmd.Stdin = bytes.NewReader(dot)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("command '%v': %v\n%v", cmd, err, stderr.String())
	}
	return img, nil
}

// DotToImage renders dot source to an image file through the go-graphviz
// bindings, falling back to the dot executable when rendering fails.
func DotToImage(outfname string, format string, dot []byte) (string, error) {
	g := graphviz.New()
	graph, err := graphviz.ParseBytes(dot)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := graph.Close(); err != nil {
			log.Fatal(err)
		}
		g.Close()
	}()

	var img string
	if outfname == "" {
		img = filepath.Join(os.TempDir(), fmt.Sprintf("strictness_export.%s", format))
	} else {
		img = fmt.Sprintf("%s.%s", outfname, format)
	}
	if err := g.RenderFilename(graph, graphviz.Format(format), img); err != nil {
		return dotToImageExe(outfname, format, dot)
	}
	return img, nil
}

const tmplEdge = `{{define "edge" -}}
	{{printf "%q -> %q [ %s ]" .From .To .Attrs}}
{{- end}}`

const tmplNode = `{{define "node" -}}
	{{printf "%q [ %s ]" .ID .Attrs}}
{{- end}}`

const tmplGraph = `digraph ExpressionTree {
	label="{{.Title}}";
	labeljust="l";
	fontname="Arial";
	fontsize="14";
	rankdir="{{or .Options.rankdir "TB"}}";
	style="solid";
	penwidth="0.5";
	pad="0.0";
	nodesep="{{.Options.nodesep}}";

	node [shape="box" style="filled" fillcolor="honeydew" fontname="Verdana" penwidth="1.0" margin="0.05,0.0"];
	edge [minlen="{{or .Options.minlen "1"}}"]

	{{range .Nodes}}
	{{template "node" .}}
	{{- end}}

	{{- range .Edges}}
	{{template "edge" .}}
	{{- end}}
}
`

type DotNode struct {
	ID    string
	Attrs DotAttrs
}

func (n *DotNode) String() string {
	return n.ID
}

type DotEdge struct {
	From  *DotNode
	To    *DotNode
	Attrs DotAttrs
}

type DotAttrs map[string]string

func (p DotAttrs) List() []string {
	l := []string{}
	for k, v := range p {
		l = append(l, fmt.Sprintf("%s=%q;", k, v))
	}
	return l
}

func (p DotAttrs) String() string {
	return strings.Join(p.List(), " ")
}

func (p DotAttrs) Lines() string {
	return strings.Join(p.List(), "\n")
}

type DotGraph struct {
	Title   string
	Attrs   DotAttrs
	Nodes   []*DotNode
	Edges   []*DotEdge
	Options map[string]string
}

func (g *DotGraph) String() string {
	return fmt.Sprintf("digraph: %s (%d nodes)", g.Title, len(g.Nodes))
}

// WriteDot emits the graph as dot source on the given writer.
func (g *DotGraph) WriteDot(w *bytes.Buffer) error {
	t := template.New("dot")
	for _, s := range []string{tmplNode, tmplEdge, tmplGraph} {
		if _, err := t.Parse(s); err != nil {
			return err
		}
	}
	return t.Execute(w, g)
}

// Render writes the graph to an image file with the given base name and format.
func (g *DotGraph) Render(outfname string, format string) (string, error) {
	var buf bytes.Buffer
	if err := g.WriteDot(&buf); err != nil {
		return "", err
	}
	return DotToImage(outfname, format, buf.Bytes())
}
