package payment

import "paykit/jsonval"

// BarcodeStore identifies the store where an Alipay barcode payment is made.
// Store ID and name come and go together on the wire: one without the other is
// a decode error.
type BarcodeStore struct {
	ID   string
	Name string
}

// BarcodeAlipay is an in-store Alipay payment using a barcode generated by the
// customer's Alipay app.
type BarcodeAlipay struct {
	// Barcode is the value scanned from the customer's app.
	Barcode string
	// Store optionally identifies the registered store.
	Store *BarcodeStore
	// TerminalID optionally identifies the terminal creating the source.
	TerminalID string
}

func (BarcodeAlipay) SourceType() SourceType { return SourceBarcodeAlipay }

func (m BarcodeAlipay) equal(other BarcodeAlipay) bool {
	if m.Barcode != other.Barcode || m.TerminalID != other.TerminalID {
		return false
	}
	if (m.Store == nil) != (other.Store == nil) {
		return false
	}
	return m.Store == nil || *m.Store == *other.Store
}

// BarcodeOther is a barcode payment through an unrecognized service, captured
// with its raw parameters for forward compatibility.
type BarcodeOther struct {
	// Name is the tag suffix after the barcode family prefix.
	Name   string
	Params jsonval.Object
}

func (m BarcodeOther) SourceType() SourceType {
	return SourceType(PrefixBarcode + m.Name)
}
