package folio

import "testing"

func TestISIN_Validate(t *testing.T) {
	testCases := []struct {
		isin    ISIN
		wantErr bool
	}{
		{isin: "US0378331005"},
		{isin: "US38259P5089"},
		{isin: "FR0000120271"},
		{isin: "US0378331006", wantErr: true}, // wrong check digit
		{isin: "US037833100", wantErr: true},  // too short
		{isin: "us0378331005", wantErr: true}, // lower case
		{isin: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(string(tc.isin), func(t *testing.T) {
			err := tc.isin.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("ISIN(%q).Validate() error = %v, wantErr %v", tc.isin, err, tc.wantErr)
			}
		})
	}
}

func TestISIN_IsAnyString(t *testing.T) {
	// The engine does not validate identifiers.
	id := ISIN("not an isin")
	pf, err := Update(NewPortfolio(), Replace(pos(id, 1, 1, 1)))
	if err != nil {
		t.Fatalf("Update() returned an unexpected error: %v", err)
	}
	if !pf.Has(id) {
		t.Errorf("portfolio should hold %q", id)
	}
}
