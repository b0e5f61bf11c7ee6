package commands

import (
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/indexclean/internal/output"
	"github.com/jmylchreest/indexclean/pkg/indexclean"
	"github.com/jmylchreest/indexclean/pkg/inspect"
)

// report pairs a text rendering with the value structured formats encode.
type report struct {
	text []any
	data any
}

func writeReport(w io.Writer, format output.Format, r report) error {
	ow, err := output.NewWriter(w, format)
	if err != nil {
		return err
	}
	if format == output.FormatText {
		err = ow.WriteAll(r.text)
	} else {
		err = ow.Write(r.data)
	}
	if err != nil {
		return err
	}
	return ow.Close()
}

func statsReport(result *indexclean.Result) report {
	s := result.Stats
	rows := [][]string{
		{"input", humanize.Bytes(uint64(s.InputBytes))},
		{"output", humanize.Bytes(uint64(s.OutputBytes))},
	}

	tags := make([]string, 0, len(s.Removed))
	for tag := range s.Removed {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	for _, tag := range tags {
		rows = append(rows, []string{"removed " + tag, strconv.Itoa(s.Removed[tag])})
	}
	if s.Unterminated > 0 {
		rows = append(rows, []string{"unterminated", strconv.Itoa(s.Unterminated)})
	}
	if s.Placement != "" {
		rows = append(rows, []string{"loader", string(s.Placement)})
	}
	rows = append(rows, []string{"duration", s.TotalDuration.Round(time.Microsecond).String()})

	return report{
		text: []any{output.Table{
			Title:   result.Path,
			Headers: []string{"STAT", "VALUE"},
			Rows:    rows,
		}},
		data: result,
	}
}

func inspectReport(r *inspect.Report) report {
	rows := make([][]string, 0, len(r.Blocks))
	for _, b := range r.Blocks {
		src := b.Src
		if src == "" {
			src = "-"
		}
		rows = append(rows, []string{
			strconv.Itoa(b.Index),
			b.Tag,
			b.Parent,
			src,
			humanize.Bytes(uint64(b.InlineBytes)),
			formatAttrs(b.Attrs),
		})
	}

	summary := r.Summary() +
		"; marker " + presence(r.HasMarker) +
		"; loader " + presence(r.LoaderPresent)

	return report{
		text: []any{
			output.Table{
				Title:   r.Path,
				Headers: []string{"#", "TAG", "PARENT", "SRC", "INLINE", "ATTRS"},
				Rows:    rows,
			},
			summary,
		},
		data: r,
	}
}

func formatAttrs(attrs map[string]string) string {
	if len(attrs) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if v := attrs[k]; v != "" {
			parts = append(parts, k+"="+strconv.Quote(v))
		} else {
			parts = append(parts, k)
		}
	}
	return strings.Join(parts, " ")
}

func presence(ok bool) string {
	if ok {
		return "present"
	}
	return "missing"
}
