package ica

import (
	"strings"
	"testing"

	"github.com/etnz/kvitto"
	"github.com/google/go-cmp/cmp"
)

const receiptsXML = `<?xml version="1.0" encoding="UTF-8"?>
<root>
  <transactions>
    <transactionId>1001</transactionId>
    <transactionTimestamp>2024-01-05T17:45:12</transactionTimestamp>
    <transactionValue>32,00</transactionValue>
    <marketingName>ICA Kvantum</marketingName>
    <vatAmount>3,43</vatAmount>
    <paymentType>Kort</paymentType>
  </transactions>
  <transactions>
    <transactionId>1002</transactionId>
    <transactionTimestamp>not a date</transactionTimestamp>
  </transactions>
  <transactions>
    <transactionId>1003</transactionId>
    <transactionTimestamp>2024-02-10T09:12:00</transactionTimestamp>
    <transactionValue>12</transactionValue>
  </transactions>
</root>`

const itemsXML = `<?xml version="1.0" encoding="UTF-8"?>
<root>
  <transactions>
    <transactionId>1001</transactionId>
    <itemDesc>Mjölk 3%</itemDesc>
    <quantity>2</quantity>
    <price>20,00</price>
  </transactions>
  <transactions>
    <transactionId>1001</transactionId>
    <itemDesc/>
    <quantity>1</quantity>
    <price>5</price>
  </transactions>
  <transactions transactionId="1003">
    <itemDesc>Bröd &amp; smör</itemDesc>
    <quantity>0,5</quantity>
    <price>12</price>
  </transactions>
</root>`

func TestReadReceipts(t *testing.T) {
	got, err := ReadReceipts(strings.NewReader(receiptsXML))
	if err != nil {
		t.Fatalf("ReadReceipts() error = %v", err)
	}
	var ids []kvitto.TransactionID
	for _, r := range got {
		ids = append(ids, r.ID)
	}
	if diff := cmp.Diff([]kvitto.TransactionID{"1001", "1003"}, ids); diff != "" {
		t.Errorf("ReadReceipts() ids mismatch (-want +got):\n%s", diff)
	}
	if got[0].Month().String() != "2024-01" {
		t.Errorf("Month() = %v, want 2024-01", got[0].Month())
	}
	if got[0].Value.String() != "32" {
		t.Errorf("Value = %v, want 32", got[0].Value)
	}
}

func TestReadLineItems(t *testing.T) {
	got, err := ReadLineItems(strings.NewReader(itemsXML))
	if err != nil {
		t.Fatalf("ReadLineItems() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("ReadLineItems() = %d lines, want 3", len(got))
	}

	testCases := []struct {
		tx       kvitto.TransactionID
		desc     string
		quantity string
		price    string
	}{
		{"1001", "Mjölk 3%", "2", "20"},
		{"1001", "", "1", "5"},
		{"1003", "Bröd & smör", "0.5", "12"},
	}
	for i, tc := range testCases {
		it := got[i]
		if it.TransactionID != tc.tx || it.Desc != tc.desc || it.Quantity.String() != tc.quantity || it.Price.String() != tc.price {
			t.Errorf("line %d = {%s %q %v %v}, want {%s %q %s %s}", i, it.TransactionID, it.Desc, it.Quantity, it.Price, tc.tx, tc.desc, tc.quantity, tc.price)
		}
	}
}

func TestReadLineItems_Latin1(t *testing.T) {
	// "Mjölk" with ö encoded as the single byte 0xf6.
	doc := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
		"<root><transactions><transactionId>1</transactionId><itemDesc>Mj\xf6lk</itemDesc><quantity>1</quantity><price>12</price></transactions></root>"
	got, err := ReadLineItems(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadLineItems() error = %v", err)
	}
	if len(got) != 1 || got[0].Desc != "Mjölk" {
		t.Errorf("ReadLineItems() = %+v, want one Mjölk line", got)
	}
}

func TestReadReceipts_Malformed(t *testing.T) {
	if _, err := ReadReceipts(strings.NewReader("<root><transactions>")); err == nil {
		t.Errorf("ReadReceipts() on a truncated document: error = nil")
	}
}

func TestReadXML_Aggregate(t *testing.T) {
	receipts, err := ReadReceipts(strings.NewReader(receiptsXML))
	if err != nil {
		t.Fatal(err)
	}
	items, err := ReadLineItems(strings.NewReader(itemsXML))
	if err != nil {
		t.Fatal(err)
	}
	s := kvitto.Analyze(receipts, items).Summary()
	if got := s.Rows()[0].Item; got != "Mjölk 3%" {
		t.Errorf("top item = %q, want %q", got, "Mjölk 3%")
	}
	if got := s.Len(); got != 2 {
		t.Errorf("Summary().Len() = %d, want 2", got)
	}
}

func TestReadXML_Nested(t *testing.T) {
	doc := `<root>
  <transactions>
    <transactionId>1</transactionId>
    <transactions>
      <transactionId>2</transactionId>
      <transactionTimestamp>2024-02-10T09:12:00</transactionTimestamp>
    </transactions>
    <transactionTimestamp>2024-01-05T17:45:12</transactionTimestamp>
  </transactions>
  <group><transactions transactionId="3"><transactionTimestamp>2024-03-01</transactionTimestamp></transactions></group>
</root>`
	records, err := readXML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("readXML() error = %v", err)
	}
	want := []record{
		{"transactionId": "1", "transactionTimestamp": "2024-01-05T17:45:12"},
		{"transactionId": "2", "transactionTimestamp": "2024-02-10T09:12:00"},
		{"transactionId": "3", "transactionTimestamp": "2024-03-01"},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("readXML() mismatch (-want +got):\n%s", diff)
	}
}
