package tmpl

type Main struct {
	Generator string
	Version   string
	Header    bool
	Comment   string
	Code      string
}

type Provider struct {
	RecordName string
	Fields     []ABIField
	TotalSize  uint32
	FieldCount int
}

type ABIField struct {
	Name     string
	TypeName string
	Size     uint32
}
