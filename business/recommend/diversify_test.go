package recommend

import (
	"testing"

	"africahub/domain"
)

func scoredProduct(id, brand string, score float64, countries ...string) domain.ScoredProduct {
	return domain.ScoredProduct{
		Product: testProduct(id, brand, 100, nil, countries),
		Score:   domain.AdvancedScore{OverallScore: score},
	}
}

func TestDiversifyByBrandKeepsBestPerBrand(t *testing.T) {
	scored := []domain.ScoredProduct{
		scoredProduct("p1", "AcmeSure", 0.9),
		scoredProduct("p2", "AcmeSure", 0.7),
		scoredProduct("p3", "SafariTrust", 0.8),
	}

	got := DiversifyByBrand(scored)

	if len(got) != 2 {
		t.Fatalf("got %d products, want 2", len(got))
	}
	if got[0].Product.ID != "p1" || got[1].Product.ID != "p3" {
		t.Errorf("kept %q then %q, want p1 then p3", got[0].Product.ID, got[1].Product.ID)
	}
}

func TestDiversifyByBrandGroupsBrandlessTogether(t *testing.T) {
	scored := []domain.ScoredProduct{
		scoredProduct("p1", "", 0.6),
		scoredProduct("p2", "", 0.9),
		scoredProduct("p3", "", 0.7),
	}

	got := DiversifyByBrand(scored)

	if len(got) != 1 {
		t.Fatalf("got %d products, want 1 from the shared bucket", len(got))
	}
	if got[0].Product.ID != "p2" {
		t.Errorf("kept %q, want the highest-scored p2", got[0].Product.ID)
	}
}

func TestDiversifyByBrandOrdersByScoreThenID(t *testing.T) {
	scored := []domain.ScoredProduct{
		scoredProduct("pz", "BrandZ", 0.8),
		scoredProduct("pa", "BrandA", 0.8),
		scoredProduct("pm", "BrandM", 0.9),
	}

	got := DiversifyByBrand(scored)

	wantOrder := []string{"pm", "pa", "pz"}
	for i, want := range wantOrder {
		if got[i].Product.ID != want {
			t.Errorf("position %d = %q, want %q", i, got[i].Product.ID, want)
		}
	}
}

func TestFilterByCountry(t *testing.T) {
	scored := []domain.ScoredProduct{
		scoredProduct("p1", "A", 0.9, "Nigeria", "Kenya"),
		scoredProduct("p2", "B", 0.95, "Ghana"),
		scoredProduct("p3", "C", 0.5, "Kenya"),
	}

	got := FilterByCountry(scored, "Kenya")

	if len(got) != 2 {
		t.Fatalf("got %d products, want 2", len(got))
	}
	for _, sp := range got {
		if !sp.Product.AvailableIn("Kenya") {
			t.Errorf("product %q survived filter but is not available in Kenya", sp.Product.ID)
		}
	}
}

func TestFilterByCountryDropsEverythingWhenNoneAvailable(t *testing.T) {
	scored := []domain.ScoredProduct{
		scoredProduct("p1", "A", 0.99, "Ghana"),
	}

	if got := FilterByCountry(scored, "Egypt"); len(got) != 0 {
		t.Errorf("got %d products, want 0", len(got))
	}
}
