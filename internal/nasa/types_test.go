package nasa

import (
	"errors"
	"testing"
)

func TestSecureURL(t *testing.T) {
	cases := []struct{ in, want string }{
		{"http://images-assets.nasa.gov/a~orig.jpg", "https://images-assets.nasa.gov/a~orig.jpg"},
		{"https://images-assets.nasa.gov/a~orig.jpg", "https://images-assets.nasa.gov/a~orig.jpg"},
		{"ftp://host/http://x", "ftp://host/http://x"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := SecureURL(tc.in); got != tc.want {
			t.Fatalf("SecureURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAssetResponse_OriginalPicksFirstMatch(t *testing.T) {
	resp := AssetResponse{Collection: &AssetCollection{Items: []AssetItem{
		{Href: "http://x/a~medium.jpg"},
		{Href: "http://x/a~orig.jpg"},
		{Href: "http://x/a~orig.tif"},
	}}}
	got, err := resp.Original()
	if err != nil {
		t.Fatalf("Original returned error: %v", err)
	}
	if got != "https://x/a~orig.jpg" {
		t.Fatalf("Original = %q, want first ~orig item", got)
	}
}

func TestAssetResponse_OriginalErrors(t *testing.T) {
	if _, err := (AssetResponse{}).Original(); !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("missing collection error = %v, want ErrMalformedResponse", err)
	}
	empty := AssetResponse{Collection: &AssetCollection{}}
	if _, err := empty.Original(); !errors.Is(err, ErrNoOriginal) {
		t.Fatalf("empty collection error = %v, want ErrNoOriginal", err)
	}
}

func TestSearchResponse_SummariesEmptyCollection(t *testing.T) {
	resp := SearchResponse{Collection: &SearchCollection{}}
	got, err := resp.Summaries()
	if err != nil {
		t.Fatalf("Summaries returned error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestSearchItem_SummaryRequiresData(t *testing.T) {
	_, err := SearchItem{Links: []ItemLink{{Href: "x"}}}.Summary()
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("Summary error = %v, want ErrMalformedResponse", err)
	}
}

func TestAPIError_Message(t *testing.T) {
	err := &APIError{Path: "/search", StatusCode: 400}
	if got := err.Error(); got != "api /search returned status 400" {
		t.Fatalf("Error() = %q", got)
	}
	err.Reason = "bad"
	if got := err.Error(); got != "api /search returned status 400: bad" {
		t.Fatalf("Error() = %q", got)
	}
}
