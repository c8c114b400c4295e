package document

// InvoiceFields holds invoice data derived from a document's text by the
// structured extraction service. Every field is a pointer: a nil field means
// the value could not be determined, which is distinct from a confirmed zero
// or empty value.
type InvoiceFields struct {
	InvoiceNumber *string  `json:"InvoiceNumber"`
	InvoiceDate   *string  `json:"InvoiceDate"`
	VendorName    *string  `json:"VendorName"`
	CustomerName  *string  `json:"CustomerName"`
	NetAmount     *float64 `json:"NetAmount"`
	TaxAmount     *float64 `json:"TaxAmount"`
	GrossAmount   *float64 `json:"GrossAmount"`
}

// Empty reports whether no field was extracted at all.
func (f *InvoiceFields) Empty() bool {
	if f == nil {
		return true
	}
	return f.InvoiceNumber == nil &&
		f.InvoiceDate == nil &&
		f.VendorName == nil &&
		f.CustomerName == nil &&
		f.NetAmount == nil &&
		f.TaxAmount == nil &&
		f.GrossAmount == nil
}
