package web

const pageLayout = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; max-width: 72rem; margin: 0 auto; padding: 1rem; }
nav a { margin-right: 1rem; }
table { border-collapse: collapse; }
th, td { padding: 0.25rem 0.75rem; border-bottom: 1px solid #ddd; }
blockquote { background: #fff8e1; margin: 1rem 0; padding: 0.5rem 1rem; }
img { max-width: 100%; }
</style>
</head>
<body>
<nav><a href="/">Home</a><a href="/overview">Overview</a><a href="/performance">Performance</a><a href="/holdings">Holdings</a></nav>
{{.Body}}
</body>
</html>
`
