package domain

import "testing"

func TestLabelForCompound(t *testing.T) {
	tests := map[float64]string{
		0.5:    LabelPositive,
		0.05:   LabelPositive,
		0.049:  LabelNeutral,
		0:      LabelNeutral,
		-0.049: LabelNeutral,
		-0.05:  LabelNegative,
		-0.5:   LabelNegative,
	}
	for compound, expected := range tests {
		if got := LabelForCompound(compound); got != expected {
			t.Fatalf("%f expected %s, got %s", compound, expected, got)
		}
	}
}

func TestProviderSymbol(t *testing.T) {
	equity := Instrument{Symbol: "AAPL", AssetType: AssetTypeEquity}
	if got := equity.ProviderSymbol(); got != "AAPL" {
		t.Fatalf("expected AAPL, got %s", got)
	}

	crypto := Instrument{Symbol: "BTC", AssetType: AssetTypeCrypto}
	if got := crypto.ProviderSymbol(); got != "BTC-USD" {
		t.Fatalf("expected BTC-USD, got %s", got)
	}
}

func TestStockListFallsBackToMajor(t *testing.T) {
	major := StockList("major")
	if len(major) == 0 {
		t.Fatal("expected non-empty major list")
	}
	unknown := StockList("nonsense")
	if len(unknown) != len(major) {
		t.Fatalf("expected fallback to major list, got %d instruments", len(unknown))
	}
	for _, inst := range unknown {
		if inst.AssetType != AssetTypeEquity {
			t.Fatalf("expected equity asset type, got %s", inst.AssetType)
		}
	}
}

func TestCryptoListAssetType(t *testing.T) {
	for _, inst := range CryptoList("meme") {
		if inst.AssetType != AssetTypeCrypto {
			t.Fatalf("expected crypto asset type, got %s", inst.AssetType)
		}
	}
}
