package main

import (
	"bytes"
	"flag"
	"go/format"
	"io/ioutil"
	"path/filepath"
	"strings"
	"text/template"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func main() {

	modelFile := flag.String("model", "generate/codebuild-2016-10-06.json", "service model document to generate from")
	templateDir := flag.String("templates", "generate/templates", "directory holding the code templates")
	outputDir := flag.String("out", "codebuild", "directory to write the generated Go files to")
	pkg := flag.String("package", "codebuild", "name of the generated Go package")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	model, err := loadModel(*modelFile)
	if err != nil {
		log.WithError(err).Fatal("Failed to load service model")
	}

	g := &generator{
		model:       model,
		pkg:         *pkg,
		templateDir: *templateDir,
	}

	files, err := g.render()
	if err != nil {
		log.WithError(err).Fatal("Failed to generate code")
	}

	for name, src := range files {
		path := filepath.Join(*outputDir, name)
		if err := ioutil.WriteFile(path, src, 0644); err != nil {
			log.WithError(err).WithField("file", path).Fatal("Failed to write generated file")
		}
		log.WithField("file", path).Info("Generated")
	}

	log.Infof("Generated %d shapes, %d enums and %d operations for %s API version %s",
		len(model.Shapes), len(model.Enums), len(model.Operations), model.Metadata.ServiceID, model.Metadata.APIVersion)

}

// loadModel reads and resolves a service model document
func loadModel(filename string) (*Model, error) {

	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %s", filename)
	}

	model := &Model{}
	if err := jsoniter.Unmarshal(data, model); err != nil {
		return nil, errors.Wrapf(err, "could not parse %s", filename)
	}

	if err := model.resolve(); err != nil {
		return nil, errors.Wrapf(err, "invalid model %s", filename)
	}

	return model, nil

}

type generator struct {
	model       *Model
	pkg         string
	templateDir string
}

type enumData struct {
	Name   string
	Values []string
}

// render executes every template against the model, returning the gofmt-ed
// source of each generated file keyed by file name.
func (g *generator) render() (map[string][]byte, error) {

	files := map[string][]byte{}

	for group, shapes := range g.model.Files() {
		std, ext := imports(shapes)
		src, err := g.execute("api.template", struct {
			Package     string
			ImportBlock string
			Shapes      []*Shape
		}{
			Package:     g.pkg,
			ImportBlock: importBlock(std, ext),
			Shapes:      shapes,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "file group %s", group)
		}
		files[filename(group)] = src
	}

	enums := []enumData{}
	for _, name := range sortedEnumNames(g.model.Enums) {
		enums = append(enums, enumData{Name: name, Values: g.model.Enums[name]})
	}
	src, err := g.execute("enums.template", struct {
		Package string
		Enums   []enumData
	}{
		Package: g.pkg,
		Enums:   enums,
	})
	if err != nil {
		return nil, err
	}
	files["enums.go"] = src

	src, err = g.execute("operations.template", struct {
		Package    string
		Operations []*Operation
	}{
		Package:    g.pkg,
		Operations: g.model.SortedOperations(),
	})
	if err != nil {
		return nil, err
	}
	files["operations.go"] = src

	return files, nil

}

func (g *generator) execute(name string, data interface{}) ([]byte, error) {

	tmpl, err := template.New(name).Funcs(template.FuncMap{
		"wrap":      wrap,
		"enumConst": enumConstName,
	}).ParseFiles(filepath.Join(g.templateDir, name))
	if err != nil {
		return nil, errors.Wrapf(err, "could not load template %s", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, errors.Wrapf(err, "could not execute template %s", name)
	}

	// Format the generated Go file with gofmt
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrapf(err, "could not format the output of template %s", name)
	}

	return formatted, nil

}

func importBlock(std, ext []string) string {

	lines := []string{}
	for _, p := range std {
		lines = append(lines, "\t\""+p+"\"")
	}
	if len(std) > 0 && len(ext) > 0 {
		lines = append(lines, "")
	}
	for _, p := range ext {
		lines = append(lines, "\t\""+p+"\"")
	}

	return "import (\n" + strings.Join(lines, "\n") + "\n)\n"

}

func sortedEnumNames(enums map[string][]string) []string {
	set := map[string]bool{}
	for name := range enums {
		set[name] = true
	}
	return sortedKeys(set)
}
