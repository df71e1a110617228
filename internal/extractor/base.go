package extractor

// EnumRecord is a public enum found anywhere in a control's source file.
type EnumRecord struct {
	Name        string   `json:"name"`
	Values      []string `json:"values"`
	Description string   `json:"description,omitempty"`
}

// PropertyRecord is a DependencyProperty registration. Name has the
// "Property" suffix removed.
type PropertyRecord struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Default     string `json:"default"`
	Description string `json:"description,omitempty"`
}

// ControlRecord is the metadata extracted for one control class. Properties
// and Enums keep declaration order.
type ControlRecord struct {
	Name        string           `json:"name"`
	BaseClass   string           `json:"base_class"`
	Description string           `json:"description"`
	Properties  []PropertyRecord `json:"properties"`
	Enums       []EnumRecord     `json:"enums"`
	SourcePath  string           `json:"source_path,omitempty"`
}
