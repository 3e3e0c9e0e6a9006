package caja

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	fixedClock(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))

	book, clientID := mustAddClient(t, NewBook(), "Acme")
	book, supplierID := mustAddSupplier(t, book, "Insumos SA")
	var err error
	if book, err = book.RegisterSale(clientID, ARS(1000), "inv1"); err != nil {
		t.Fatal(err)
	}
	if book, err = book.CollectPayment(clientID, Efectivo, ARS(400)); err != nil {
		t.Fatal(err)
	}
	if book, err = book.RegisterPurchase(supplierID, ARS(250.50), "bill1"); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := EncodeBook(&buf, book); err != nil {
		t.Fatalf("EncodeBook: %v", err)
	}
	got, err := DecodeBook(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("DecodeBook: %v", err)
	}

	if diff := cmp.Diff(book, got); diff != "" {
		t.Errorf("round trip mismatch (-encoded +decoded):\n%s", diff)
	}
}

func TestEncodeBook_AmountsArePlainNumbers(t *testing.T) {
	book := NewBook()
	book.Account(Efectivo).Balance = ARS(1250.75)

	var buf bytes.Buffer
	if err := EncodeBook(&buf, book); err != nil {
		t.Fatalf("EncodeBook: %v", err)
	}
	if strings.Contains(buf.String(), `"1250.75"`) {
		t.Errorf("balance was encoded as a quoted string:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "1250.75") {
		t.Errorf("balance missing from output:\n%s", buf.String())
	}
}

func TestTransaction_CanonicalFieldOrder(t *testing.T) {
	tx := Transaction{
		ID:          "t1",
		Date:        time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Type:        TxIncome,
		Amount:      ARS(400),
		Description: "Cobro a Cliente",
		Source:      "Acme",
		Destination: "EFECTIVO",
	}
	got, err := json.Marshal(tx)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"id":"t1","date":"2025-03-01T12:00:00Z","type":"INCOME","amount":400,"description":"Cobro a Cliente","source":"Acme","destination":"EFECTIVO"}`
	if string(got) != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}
}

func TestTransaction_OmitsEmptyEndpoints(t *testing.T) {
	tx := Transaction{
		ID:          "t1",
		Date:        time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Type:        TxReceivableIncrease,
		Amount:      ARS(1000),
		Description: "Venta: inv1",
		Destination: "Acme",
	}
	got, err := json.Marshal(tx)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if strings.Contains(string(got), `"source"`) {
		t.Errorf("empty source was not omitted: %s", got)
	}
	if !strings.Contains(string(got), `"destination":"Acme"`) {
		t.Errorf("destination missing: %s", got)
	}
}

func TestDecodeBook_NormalizesMissingLists(t *testing.T) {
	got, err := DecodeBook(strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("DecodeBook: %v", err)
	}
	if diff := cmp.Diff(NewBook(), got); diff != "" {
		t.Errorf("decoded empty document differs from default book:\n%s", diff)
	}
}

func TestDecodeBook_Corrupt(t *testing.T) {
	if _, err := DecodeBook(strings.NewReader("not json at all")); err == nil {
		t.Error("DecodeBook accepted garbage input")
	}
}
