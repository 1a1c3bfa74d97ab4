/*
Package tagtreedbg implements helpers to debug a tag tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package tagtreedbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/tagtree"
	"github.com/npillmayer/tagtree/attr"
	tp "github.com/xlab/treeprint"
)

// Print returns an indented outline of the tree under node, e.g.
//
//     .
//     └── <div class="component">
//         └── "Hello!"
//
func Print(node tagtree.Node) string {
	p := tp.New()
	ppt(p, node)
	return p.String()
}

func ppt(p tp.Tree, node tagtree.Node) {
	e, ok := node.(*tagtree.Element)
	if node == nil || (ok && e == nil) {
		return
	}
	if !ok || e.ChildCount() == 0 {
		p.AddNode(label(node))
		return
	}
	branch := p.AddBranch(label(node))
	for _, ch := range e.Children() {
		ppt(branch, ch)
	}
}

func label(node tagtree.Node) string {
	switch n := node.(type) {
	case tagtree.Text:
		return fmt.Sprintf("%q", n.Content())
	case *tagtree.Element:
		var b strings.Builder
		b.WriteString("<")
		b.WriteString(n.TagName())
		for _, a := range n.Attributes() {
			b.WriteString(" ")
			b.WriteString(a.Render())
		}
		b.WriteString(">")
		return b.String()
	}
	return fmt.Sprintf("%T", node)
}

// --- GraphViz ---------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname  string
	NodeTmpl  *template.Template
	EdgeTmpl  *template.Template
	AttrsTmpl *template.Template
	counter   int
}

// ToGraphViz outputs a diagram for a tag tree. The diagram is in
// GraphViz (DOT) format. Elements are drawn as ellipses, text nodes as
// boxes. Attributes of an element are collected in a record attached to
// the element with a dashed edge.
func ToGraphViz(root tagtree.Node, w io.Writer) error {
	tmpl, err := template.New("tagtree").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := &graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("treenode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(treeNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("treeedge").Parse(treeEdgeTmpl))
	gparams.AttrsTmpl = template.Must(template.New("attrs").Parse(attrsTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	if _, err = nodes(root, w, gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

type node struct {
	Name    string
	Tag     string // empty for text
	Content string
}

type edge struct {
	N1, N2 string
}

type attrsRecord struct {
	Name  string
	Owner string
	Facts []attr.Fact
}

func nodes(n tagtree.Node, w io.Writer, gparams *graphParamsType) (string, error) {
	e, ok := n.(*tagtree.Element)
	if n == nil || (ok && e == nil) {
		return "", nil
	}
	gparams.counter++
	name := fmt.Sprintf("node%05d", gparams.counter)
	if !ok {
		t := n.(tagtree.Text)
		return name, gparams.NodeTmpl.Execute(w, node{Name: name, Content: t.Content()})
	}
	if err := gparams.NodeTmpl.Execute(w, node{Name: name, Tag: e.TagName()}); err != nil {
		return name, err
	}
	if err := elementAttrs(e, name, w, gparams); err != nil {
		return name, err
	}
	for _, ch := range e.Children() {
		chname, err := nodes(ch, w, gparams)
		if err != nil {
			return name, err
		}
		if chname == "" {
			continue
		}
		if err := gparams.EdgeTmpl.Execute(w, edge{name, chname}); err != nil {
			return name, err
		}
	}
	return name, nil
}

func elementAttrs(e *tagtree.Element, owner string, w io.Writer, gparams *graphParamsType) error {
	var facts []attr.Fact
	for _, a := range e.Attributes() {
		facts = append(facts, attr.FactsOf(a)...)
	}
	if len(facts) == 0 {
		return nil
	}
	rec := attrsRecord{Name: "attrs_" + owner, Owner: owner, Facts: facts}
	return gparams.AttrsTmpl.Execute(w, rec)
}

func shortText(s string) string {
	r := []rune(s)
	if len(r) > 10 {
		s = string(r[:10]) + "..."
	}
	s = strings.Replace(s, `\`, `\\`, -1)
	s = strings.Replace(s, `"`, `\"`, -1)
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return `"\"` + s + `\""`
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const treeNodeTmpl = `{{ if eq .Tag "" }}
{{ .Name }}	[ label={{ shortstring .Content }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .Tag }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const attrsTmpl = `{{ .Name }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">attributes</font></td></tr>
      {{ range .Facts }}
      <tr><td align="right">{{ html .Name }}=</td><td>{{ html .Value }}</td></tr>
      {{ end }}
    </table>> ] ;
{{ .Owner }} -> {{ .Name }} [dir=none weight=1 style="dashed"] ;
`

const treeEdgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`
