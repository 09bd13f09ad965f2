package htmlutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const page = `<html><body>
<a href="/a">A</a>
<a name="nohref">skip</a>
<a href="/b"> B
	link </a>
<pre>1 2
3
</pre>
<h3>  Sample   Input 1 </h3>
</body></html>`

func TestHrefs(t *testing.T) {
	doc, err := ParseDocument([]byte(page))
	require.NoError(t, err)

	require.Equal(t, []string{"/a", "/b"}, Hrefs(doc.Find("a")))
}

func TestGetText(t *testing.T) {
	doc, err := ParseDocument([]byte(page))
	require.NoError(t, err)

	require.Equal(t, "1 2\n3\n", GetText(doc.Find("pre").Nodes[0]))
	require.Equal(t, "Sample Input 1", CleanText(doc.Find("h3").Nodes[0]))
	require.Equal(t, "B link", CleanText(doc.Find("a").Nodes[2]))
	require.Equal(t, "", GetText(nil))
}

func TestOwnText(t *testing.T) {
	doc, err := ParseDocument([]byte(`<h3>Sample Input 1<span>Copy</span></h3>`))
	require.NoError(t, err)

	require.Equal(t, "Sample Input 1", OwnText(doc.Find("h3").Nodes[0]))
}
