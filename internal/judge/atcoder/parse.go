package atcoder

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"online-judge-toolchain/internal/components/failure"
	"online-judge-toolchain/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

var (
	sampleInputRegex  = regexp.MustCompile(`入力例|Sample Input`)
	sampleOutputRegex = regexp.MustCompile(`出力例|Sample Output`)
	sampleHeaderRegex = regexp.MustCompile(`入力例|出力例|Sample Input|Sample Output`)
)

const titleSeparator = " - "

// ExtractTaskIds returns the task ids linked from a contest's task list as
// a sorted set. Only hrefs of the form /contests/<contest>/tasks/<task> are
// considered.
func ExtractTaskIds(hrefs []string, contestId string) []string {
	prefix := fmt.Sprintf("/contests/%s/tasks/", contestId)

	set := map[string]struct{}{}
	for _, href := range hrefs {
		if !strings.HasPrefix(href, prefix) {
			continue
		}
		if parsed, err := url.Parse(href); err == nil {
			href = parsed.Path
		}
		segments := strings.Split(href, "/")
		if len(segments) < 5 || segments[4] == "" {
			continue
		}
		set[segments[4]] = struct{}{}
	}

	tasks := make([]string, 0, len(set))
	for task := range set {
		tasks = append(tasks, task)
	}
	sort.Strings(tasks)
	return tasks
}

// TaskPrefix turns a task page title like "A - Happy Birthday!" into the
// name of the task's local folder, "a".
func TaskPrefix(title string) (string, error) {
	prefix, _, _ := strings.Cut(title, titleSeparator)
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	prefix = strings.ReplaceAll(prefix, "/", "_")
	if prefix == "" || prefix == "." || prefix == ".." {
		return "", failure.Newf(failure.KindParse, "task prefix", "unusable task title %q", title)
	}
	return prefix, nil
}

type SampleKind int

const (
	SampleInput SampleKind = iota
	SampleOutput
)

func (k SampleKind) Ext() string {
	if k == SampleOutput {
		return "out"
	}
	return "in"
}

type Sample struct {
	Index   string
	Kind    SampleKind
	Content string
}

// Filename is sample-<index>.in or sample-<index>.out
func (s Sample) Filename() string {
	return fmt.Sprintf("sample-%s.%s", s.Index, s.Kind.Ext())
}

// sampleIndex is the last whitespace separated token of a header,
// "Sample Input 2" -> "2"
func sampleIndex(header string) (string, error) {
	fields := strings.Fields(header)
	if len(fields) == 0 {
		return "", failure.Newf(failure.KindParse, "sample index", "sample number not found in %q", header)
	}
	return fields[len(fields)-1], nil
}

// classifyHeader returns whether a header belongs to a sample and which side
// of it. Headers that match the umbrella pattern but neither side are
// skipped.
func classifyHeader(header string) (SampleKind, bool) {
	if !sampleHeaderRegex.MatchString(header) {
		return 0, false
	}
	switch {
	case sampleInputRegex.MatchString(header):
		return SampleInput, true
	case sampleOutputRegex.MatchString(header):
		return SampleOutput, true
	}
	return 0, false
}

// ExtractSamples collects the <pre> blocks of every `.part` whose first <h3>
// is a sample header, in document order.
func ExtractSamples(doc *goquery.Document) ([]Sample, error) {
	var samples []Sample
	var err error

	doc.Find(".part").EachWithBreak(func(_ int, part *goquery.Selection) bool {
		h3 := part.Find("h3").First()
		if h3.Length() == 0 {
			return true
		}
		// the copy button lives inside the header
		header := strings.TrimSpace(htmlutil.OwnText(h3.Nodes[0]))
		kind, ok := classifyHeader(header)
		if !ok {
			return true
		}

		pres := part.Find("pre")
		if pres.Length() == 0 {
			return true
		}
		var index string
		index, err = sampleIndex(header)
		if err != nil {
			return false
		}

		for _, pre := range pres.Nodes {
			samples = append(samples, Sample{
				Index:   index,
				Kind:    kind,
				Content: htmlutil.GetText(pre),
			})
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	return samples, nil
}

func pageTitle(doc *goquery.Document) (string, error) {
	title := doc.Find("title").First()
	if title.Length() == 0 {
		return "", failure.Newf(failure.KindParse, "task title", "title not found")
	}
	return htmlutil.CleanText(title.Nodes[0]), nil
}
