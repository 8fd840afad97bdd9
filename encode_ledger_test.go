package portfolio

import (
	"bytes"
	"strings"
	"testing"
)

func TestDecodeLedger(t *testing.T) {
	csvStream := `Symbol, Action ,quantity,Date,note
AAPL,BUY,10,2024-02-01,first
MSFT,buy,2.5,2024-01-15,
AAPL,Sell,4,2024-02-01,same day keeps file order
XIU.TO,BUY,100,2024-3-7,
`
	ledger, err := DecodeLedger(strings.NewReader(csvStream))
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}

	want := []Transaction{
		NewBuy(NewDate(2024, 1, 15), "MSFT", Q(2.5)),
		NewBuy(NewDate(2024, 2, 1), "AAPL", Q(10)),
		NewSell(NewDate(2024, 2, 1), "AAPL", Q(4)),
		NewBuy(NewDate(2024, 3, 7), "XIU.TO", Q(100)),
	}
	got := ledger.Transactions()
	if len(got) != len(want) {
		t.Fatalf("DecodeLedger() decoded wrong number of transactions. Got: %d, want: %d", len(got), len(want))
	}
	for i := range want {
		g, w := got[i], want[i]
		if g.Date != w.Date || g.Symbol != w.Symbol || g.Action != w.Action || !g.Quantity.Equal(w.Quantity) {
			t.Errorf("transaction #%d = %+v, want %+v", i, g, w)
		}
	}
}

func TestDecodeLedger_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "empty file",
			input:   "",
			wantErr: "ledger is empty",
		},
		{
			name:    "missing column",
			input:   "date,symbol,quantity\n2024-01-02,AAA,10\n",
			wantErr: "missing column(s) action",
		},
		{
			name:    "unknown action",
			input:   "date,symbol,action,quantity\n2024-01-02,AAA,HOLD,10\n",
			wantErr: `line 2: unknown action "HOLD"`,
		},
		{
			name:    "malformed date",
			input:   "date,symbol,action,quantity\n2024-01-02,AAA,BUY,10\n02/01/2024,AAA,BUY,10\n",
			wantErr: "line 3: invalid date",
		},
		{
			name:    "malformed quantity",
			input:   "date,symbol,action,quantity\n2024-01-02,AAA,BUY,ten\n",
			wantErr: "line 2: invalid quantity",
		},
		{
			name:    "zero quantity",
			input:   "date,symbol,action,quantity\n2024-01-02,AAA,BUY,0\n",
			wantErr: "line 2: transaction quantity must be positive",
		},
		{
			name:    "negative quantity",
			input:   "date,symbol,action,quantity\n2024-01-02,AAA,SELL,-3\n",
			wantErr: "must be positive",
		},
		{
			name:    "missing symbol",
			input:   "date,symbol,action,quantity\n2024-01-02,,BUY,3\n",
			wantErr: "symbol is missing",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeLedger(strings.NewReader(tc.input))
			if err == nil {
				t.Fatalf("DecodeLedger() expected an error containing %q, got nil", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("DecodeLedger() error = %q, want it to contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestDecodeLedger_HeaderOnly(t *testing.T) {
	ledger, err := DecodeLedger(strings.NewReader("date,symbol,action,quantity\n"))
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}
	if ledger.Len() != 0 {
		t.Errorf("ledger.Len() = %d, want 0", ledger.Len())
	}
}

func TestEncodeDecodeLedger(t *testing.T) {
	input := `action,date,symbol,quantity
buy,2024-02-01T10:30:00Z,AAPL,10.50
sell,2024-1-3,AAPL,2
`
	ledger, err := DecodeLedger(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, ledger); err != nil {
		t.Fatalf("EncodeLedger() returned an unexpected error: %v", err)
	}
	want := `date,symbol,action,quantity
2024-01-03,AAPL,SELL,2
2024-02-01,AAPL,BUY,10.5
`
	if got := buf.String(); got != want {
		t.Errorf("EncodeLedger() =\n%s\nwant:\n%s", got, want)
	}
}
