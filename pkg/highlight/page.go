package highlight

import (
	"fmt"
	"html"
)

const pageStyle = `body { margin: 0; padding: 24px; background: #1e1f22; color: #d4d4d4; }
pre.sql { font-family: "JetBrains Mono", Menlo, Consolas, monospace; font-size: 14px; line-height: 1.5; white-space: pre-wrap; }
.sql-keyword { color: #569cd6; font-weight: bold; }
.sql-string { color: #ce9178; }
.sql-ident { color: #9cdcfe; }
.sql-backtick { color: #4ec9b0; }
.sql-number { color: #b5cea8; }`

// Page wraps the HTML rendering of sql in a standalone document.
func Page(sql, title string) string {
	if title == "" {
		title = "SQL"
	}
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>%s</title>
<style>
%s
</style>
</head>
<body>
<pre class="sql">%s</pre>
</body>
</html>
`, html.EscapeString(title), pageStyle, HTML(sql))
}
