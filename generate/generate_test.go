package main

import (
	"strings"

	jsoniter "github.com/json-iterator/go"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

const widgetModel = `{
  "metadata": {"apiVersion": "2020-01-01", "serviceId": "Widgets"},
  "operations": {
    "ListWidgets": {"input": "ListWidgetsInput", "output": "ListWidgetsOutput", "documentation": "lists widgets.", "file": "widget",
      "paginator": {"inputToken": "nextToken", "outputToken": "nextToken", "limitKey": "maxResults"}}
  },
  "shapes": {
    "ListWidgetsInput": {"kind": "input", "file": "widget", "documentation": "holds the parameters of ListWidgets.", "members": [
      {"name": "NextToken", "locationName": "nextToken", "type": "string"},
      {"name": "MaxResults", "locationName": "maxResults", "type": "integer", "min": 1}
    ]},
    "ListWidgetsOutput": {"kind": "output", "file": "widget", "documentation": "holds the result of ListWidgets.", "members": [
      {"name": "Widgets", "locationName": "widgets", "type": "list", "member": {"type": "structure", "shape": "Widget"}}
    ]},
    "Widget": {"kind": "value", "file": "widget", "documentation": "is a widget.", "members": [
      {"name": "Name", "locationName": "name", "type": "string", "min": 2, "required": true, "documentation": "The widget's name."},
      {"name": "Color", "locationName": "color", "type": "string", "enum": "WidgetColor"},
      {"name": "Shiny", "locationName": "shiny", "type": "boolean"},
      {"name": "Counts", "locationName": "counts", "type": "map", "value": {"type": "long"}},
      {"name": "Parts", "locationName": "parts", "type": "list", "member": {"type": "list", "member": {"type": "structure", "shape": "Part"}}},
      {"name": "Built", "locationName": "built", "type": "timestamp"}
    ]},
    "Part": {"kind": "value", "file": "widget", "documentation": "is a part of a widget.", "members": [
      {"name": "Id", "locationName": "id", "type": "string", "required": true}
    ]}
  },
  "enums": {"WidgetColor": ["RED", "DEEP_BLUE"]}
}`

func parseModel(doc string) (*Model, error) {
	model := &Model{}
	if err := jsoniter.UnmarshalFromString(doc, model); err != nil {
		return nil, err
	}
	return model, model.resolve()
}

func member(model *Model, shape, name string) *Member {
	for _, m := range model.Shapes[shape].Members {
		if m.Name == name {
			return m
		}
	}
	return nil
}

var _ = Describe("Code Generator", func() {

	Context("with naming helpers", func() {

		It("builds enum constant names", func() {
			Expect(enumConstName("ComputeType", "BUILD_GENERAL1_2XLARGE")).To(Equal("ComputeTypeBuildGeneral12xlarge"))
			Expect(enumConstName("StatusType", "TIMED_OUT")).To(Equal("StatusTypeTimedOut"))
			Expect(enumConstName("CacheType", "S3")).To(Equal("CacheTypeS3"))
		})

		It("builds file names from file groups", func() {
			Expect(filename("source_credentials")).To(Equal("api_source_credentials.go"))
		})

		It("wraps documentation into comment lines", func() {
			text := strings.Repeat("word ", 40)
			for _, line := range strings.Split(strings.TrimSuffix(wrap(text, "\t"), "\n"), "\n") {
				Expect(line).To(HavePrefix("\t// "))
				Expect(len(line)).To(BeNumerically("<=", 76))
			}
			Expect(wrap("", "")).To(BeEmpty())
		})

	})

	Context("with a valid model", func() {

		var model *Model
		BeforeEach(func() {
			var err error
			model, err = parseModel(widgetModel)
			Expect(err).To(BeNil())
		})

		It("names shapes and operations and sorts members", func() {
			Expect(model.Operations["ListWidgets"].Name).To(Equal("ListWidgets"))
			Expect(model.Shapes["Widget"].Members[0].Name).To(Equal("Built"))
			Expect(model.SortedOperations()).To(HaveLen(1))
			Expect(model.Files()).To(HaveKey("widget"))
		})

		It("maps members to Go types", func() {
			Expect(member(model, "Widget", "Name").GoType()).To(Equal("*string"))
			Expect(member(model, "Widget", "Built").GoType()).To(Equal("*time.Time"))
			Expect(member(model, "Widget", "Counts").GoType()).To(Equal("map[string]*int64"))
			Expect(member(model, "Widget", "Parts").GoType()).To(Equal("[][]*Part"))
			Expect(member(model, "Widget", "Parts").ElemType()).To(Equal("[]*Part"))
			Expect(member(model, "ListWidgetsInput", "MaxResults").ScalarType()).To(Equal("int64"))
		})

		It("renders struct tags", func() {
			Expect(member(model, "Widget", "Name").Tags()).To(Equal("`" + `locationName:"name" min:"2" type:"string" required:"true" json:"name,omitempty"` + "`"))
			Expect(member(model, "Widget", "Color").Tags()).To(Equal("`" + `locationName:"color" type:"string" enum:"WidgetColor" json:"color,omitempty"` + "`"))
		})

		It("decides which shapes are validated", func() {
			Expect(model.Shapes["Widget"].HasValidate()).To(BeTrue())
			Expect(model.Shapes["ListWidgetsInput"].HasValidate()).To(BeTrue())
			Expect(model.Shapes["ListWidgetsOutput"].HasValidate()).To(BeFalse())
			Expect(member(model, "Widget", "Parts").NestedValidate()).To(Equal("nested-list"))
			Expect(member(model, "ListWidgetsInput", "MaxResults").MinCheck()).To(Equal("value"))
			Expect(member(model, "Widget", "Name").MinCheck()).To(Equal("len"))
		})

		It("lists the imports the generated code needs", func() {
			std, ext := imports(model.Files()["widget"])
			Expect(std).To(Equal([]string{"fmt", "time"}))
			Expect(ext).To(Equal([]string{
				"github.com/aws/aws-sdk-go/aws",
				"github.com/aws/aws-sdk-go/aws/awsutil",
				"github.com/aws/aws-sdk-go/aws/request",
			}))
		})

		It("renders gofmt-ed Go files", func() {
			g := &generator{model: model, pkg: "widgets", templateDir: "templates"}
			files, err := g.render()
			Expect(err).To(BeNil())
			Expect(files).To(HaveLen(3))
			Expect(files).To(HaveKey("api_widget.go"))
			Expect(files).To(HaveKey("enums.go"))
			Expect(files).To(HaveKey("operations.go"))

			api := string(files["api_widget.go"])
			Expect(api).To(HavePrefix("// Code generated by generate/main.go. DO NOT EDIT."))
			Expect(api).To(ContainSubstring("type Widget struct {"))
			Expect(api).To(ContainSubstring("func (s *Widget) AddCountsEntry(key string, value int64) error {"))
			Expect(api).To(ContainSubstring("func (s *Widget) AppendParts(v ...[]*Part) *Widget {"))
			Expect(api).To(ContainSubstring(`invalidParams.AddNested(fmt.Sprintf("%s[%v][%v]", "Parts", i, j), err.(request.ErrInvalidParams))`))
			Expect(api).NotTo(ContainSubstring("func (s *ListWidgetsOutput) Validate() error"))

			enums := string(files["enums.go"])
			Expect(enums).To(ContainSubstring(`WidgetColorDeepBlue = "DEEP_BLUE"`))
			Expect(enums).To(ContainSubstring("func WidgetColor_Values() []string {"))

			ops := string(files["operations.go"])
			Expect(ops).To(ContainSubstring(`Paginator: newPaginator("nextToken", "nextToken", "maxResults")`))
		})

	})

	Context("with a malformed model", func() {

		It("rejects references to unknown shapes", func() {
			_, err := parseModel(strings.Replace(widgetModel, `"shape": "Part"`, `"shape": "Gear"`, 1))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring(`unknown shape "Gear"`))
		})

		It("rejects references to unknown enums", func() {
			_, err := parseModel(strings.Replace(widgetModel, `"enum": "WidgetColor"`, `"enum": "WidgetShade"`, 1))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Widget.Color"))
		})

		It("rejects unsupported member types", func() {
			_, err := parseModel(strings.Replace(widgetModel, `"type": "timestamp"`, `"type": "blob"`, 1))
			Expect(err).To(HaveOccurred())
		})

	})

})
