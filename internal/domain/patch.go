package domain

import (
	"bytes"

	m "github.com/Gnarus-G/cnat/internal/model"
)

// ApplyEdits returns a copy of content with every edit spliced in. Edits hold
// ranges of the original buffer and must be sorted and non-overlapping; each
// range is shifted by the length difference accumulated so far and must still
// hold exactly the edit's Old bytes. content is never modified.
func ApplyEdits(content []byte, edits []m.Edit) ([]byte, error) {
	out := append([]byte(nil), content...)
	offset := 0
	prevEnd := -1

	for i, edit := range edits {
		if edit.Len() != len(edit.Old) {
			return nil, &PatchInvariantViolation{
				Index:  i,
				Start:  edit.Start,
				End:    edit.End,
				Reason: "range length does not match the expected bytes",
			}
		}

		if edit.Start <= prevEnd {
			return nil, &PatchInvariantViolation{
				Index:  i,
				Start:  edit.Start,
				End:    edit.End,
				Reason: "edit overlaps or precedes the previous one",
			}
		}

		start, end := edit.Start+offset, edit.End+offset+1
		if start < 0 || end > len(out) || start > end {
			return nil, &PatchInvariantViolation{
				Index:  i,
				Start:  start,
				End:    end - 1,
				Reason: "range is outside the buffer",
			}
		}

		if actual := out[start:end]; !bytes.Equal(actual, edit.Old) {
			return nil, &PatchInvariantViolation{
				Index:    i,
				Start:    start,
				End:      end - 1,
				Expected: edit.Old,
				Actual:   append([]byte(nil), actual...),
				Reason:   "bytes differ from the expected text",
			}
		}

		patched := make([]byte, 0, len(out)+len(edit.New)-len(edit.Old))
		patched = append(patched, out[:start]...)
		patched = append(patched, edit.New...)
		patched = append(patched, out[end:]...)
		out = patched

		offset += len(edit.New) - len(edit.Old)
		prevEnd = edit.End
	}

	return out, nil
}
