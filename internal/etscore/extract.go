package etscore

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrInvalidDocument is returned when a vendor response body is not valid
// JSON. This is the only extraction error: absent fields or sub-trees are
// expected and degrade to empty output instead.
var ErrInvalidDocument = errors.New("etscore: document is not valid JSON")

// The vendor hotel-detail document is loosely typed and none of its paths
// are schema-enforced, so every lookup below must tolerate absence. gjson
// gives us total (non-raising) path access: a missing node yields a zero
// Result, and ForEach on a non-array is a no-op.

// ExtractHotelSummary projects a hotel-detail document into a multi-line
// display summary. Field order is fixed (name, location, address,
// coordinates, phone, star); lines whose source nodes are absent are
// omitted entirely.
func ExtractHotelSummary(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", ErrInvalidDocument
	}
	detail := gjson.GetBytes(body, "detail")

	var b strings.Builder

	b.WriteString("Hotel: ")
	b.WriteString(detail.Get("hotelName").String())
	b.WriteString("\n")

	loc := detail.Get("location")
	if line := joinNonEmpty(", ",
		loc.Get("city").String(),
		loc.Get("stateProvinceName").String(),
		loc.Get("country").String(),
	); line != "" {
		b.WriteString("Location: ")
		b.WriteString(line)
		b.WriteString("\n")
	}

	if lines := detail.Get("contact.addressLines"); lines.IsArray() {
		var parts []string
		lines.ForEach(func(_, line gjson.Result) bool {
			parts = append(parts, line.String())
			return true
		})
		if len(parts) > 0 {
			b.WriteString("Address: ")
			b.WriteString(strings.Join(parts, ", "))
			b.WriteString("\n")
		}
	}

	// Coordinates appear only when the nested location.location node exists;
	// values pass through as the vendor provided them, without rounding.
	if coords := loc.Get("location"); coords.Exists() {
		b.WriteString("Coordinates: ")
		b.WriteString(coordinate(coords.Get("lat")))
		b.WriteString(", ")
		b.WriteString(coordinate(coords.Get("lon")))
		b.WriteString("\n")
	}

	if phone := detail.Get("financialInfo.tel").String(); phone != "" {
		b.WriteString("Phone: ")
		b.WriteString(phone)
		b.WriteString("\n")
	}

	if star := detail.Get("star").String(); star != "" {
		b.WriteString("Star: ")
		b.WriteString(star)
		b.WriteString("\n")
	}

	return b.String(), nil
}

// ExtractImageURLs collects every non-empty image URL from a hotel-detail
// document: first the top-level image blocks, then each room's image links,
// in document order. Duplicates are preserved as the vendor sent them.
func ExtractImageURLs(body []byte) ([]string, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrInvalidDocument
	}
	detail := gjson.GetBytes(body, "detail")

	var urls []string
	appendBlockURLs := func(block gjson.Result) {
		block.Get("imageUrls").ForEach(func(_, urlNode gjson.Result) bool {
			if u := urlNode.Get("url").String(); u != "" {
				urls = append(urls, u)
			}
			return true
		})
	}

	detail.Get("images").ForEach(func(_, block gjson.Result) bool {
		appendBlockURLs(block)
		return true
	})

	detail.Get("rooms").ForEach(func(_, room gjson.Result) bool {
		room.Get("imageLinks").ForEach(func(_, block gjson.Result) bool {
			appendBlockURLs(block)
			return true
		})
		return true
	})

	return urls, nil
}

// ExtractFacilityNames flattens facilityGroups[].facilities[].name,
// skipping empty names and preserving group-then-facility order.
func ExtractFacilityNames(body []byte) ([]string, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrInvalidDocument
	}

	var names []string
	gjson.GetBytes(body, "detail.facilityGroups").ForEach(func(_, group gjson.Result) bool {
		group.Get("facilities").ForEach(func(_, facility gjson.Result) bool {
			if name := facility.Get("name").String(); name != "" {
				names = append(names, name)
			}
			return true
		})
		return true
	})

	return names, nil
}

// ExtractDescription concatenates every non-empty description leaf under
// every language key of detail.descriptions, separated by blank lines.
// Language keys are visited in document order, which gjson preserves.
func ExtractDescription(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", ErrInvalidDocument
	}

	var b strings.Builder
	descs := gjson.GetBytes(body, "detail.descriptions")
	if descs.IsObject() {
		descs.ForEach(func(_, langEntries gjson.Result) bool {
			langEntries.ForEach(func(_, entry gjson.Result) bool {
				if text := entry.Get("description").String(); text != "" {
					if b.Len() > 0 {
						b.WriteString("\n\n")
					}
					b.WriteString(text)
				}
				return true
			})
			return true
		})
	}

	return b.String(), nil
}

// coordinate renders a coordinate value as provided by the vendor, falling
// back to "0" when the leaf is absent inside a present coordinate node.
func coordinate(res gjson.Result) string {
	if !res.Exists() {
		return "0"
	}
	return res.String()
}

// joinNonEmpty joins the non-empty parts with sep.
func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
