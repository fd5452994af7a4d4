package celltab

// DefaultSeparator is the field separator used when options leave it unset.
const DefaultSeparator = ','

// ExportOptions configures CSV export.
type ExportOptions struct {
	// Separator is the field separator. Zero means comma.
	Separator rune
	// IncludeHeaders emits a first row of column letters for the exported
	// column range.
	IncludeHeaders bool
	// LineTerminator joins the emitted lines. Empty means "\n".
	LineTerminator string
	// AnchorAtColumnA starts the exported grid at column A, padding with
	// empty columns before the first occupied one. If nil, defaults to true;
	// false starts at the first occupied column instead.
	AnchorAtColumnA *bool
}

// DefaultExportOptions returns the default CSV export options.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{}
}

func (o ExportOptions) separator() rune {
	if o.Separator == 0 {
		return DefaultSeparator
	}
	return o.Separator
}

func (o ExportOptions) lineTerminator() string {
	if o.LineTerminator == "" {
		return "\n"
	}
	return o.LineTerminator
}

func (o ExportOptions) shouldAnchorAtColumnA() bool {
	if o.AnchorAtColumnA != nil {
		return *o.AnchorAtColumnA
	}
	return true
}

// ImportOptions configures CSV import.
type ImportOptions struct {
	// Separator is the field separator. Zero means comma.
	Separator rune
	// HasHeaderRow discards the first parsed row.
	HasHeaderRow bool
	// OriginRow is the 1-based row the first data row lands on. Zero means
	// row 1.
	OriginRow int
	// OriginColumn is the column letters the first field of each row lands
	// on. Empty means "A".
	OriginColumn string
}

// DefaultImportOptions returns the default CSV import options.
func DefaultImportOptions() ImportOptions {
	return ImportOptions{}
}

func (o ImportOptions) separator() rune {
	if o.Separator == 0 {
		return DefaultSeparator
	}
	return o.Separator
}

func (o ImportOptions) originRow() int {
	if o.OriginRow == 0 {
		return 1
	}
	return o.OriginRow
}

func (o ImportOptions) originColumn() string {
	if o.OriginColumn == "" {
		return "A"
	}
	return o.OriginColumn
}
