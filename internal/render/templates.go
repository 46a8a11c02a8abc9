package render

// siteTemplates holds every page and partial. An empty card list renders an
// empty section; there is no special empty state.
const siteTemplates = `
{{define "head"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.}}</title>
<link rel="stylesheet" href="/static/css/site.css">
</head>
<body>
<header class="nav">
<a class="brand" href="/">JobMetric</a>
<nav><a href="/#packages">Packages</a> <a href="/#blog">Blog</a> <a href="/team">Team</a></nav>
</header>
{{end}}

{{define "section"}}<section class="section" id="{{.ID}}">
{{if .Title}}<h2>{{.Title}}</h2>{{end}}
<div class="cards">
{{range .Cards}}<article class="card">
{{if .Icon}}<span class="icon">{{.Icon}}</span>{{end}}
<h3>{{if .Link}}<a href="{{.Link}}">{{.Title}}</a>{{else}}{{.Title}}{{end}}</h3>
{{if .Badge}}<span class="badge">{{.Badge}}</span>{{end}}
<p>{{.Body}}</p>
{{if .Meta}}<span class="meta">{{.Meta}}</span>{{end}}
</article>
{{end}}</div>
</section>
{{end}}

{{define "member"}}<article class="card member">
<h3>{{.Name}}</h3>
<span class="meta">{{.Role}}</span>
<p><a href="mailto:{{.Email}}">{{.Email}}</a></p>
<div class="social">
{{if .Social.GitHub}}<a class="social-github" href="{{.Social.GitHub}}">GitHub</a>{{end}}
{{if .Social.Instagram}}<a class="social-instagram" href="{{.Social.Instagram}}">Instagram</a>{{end}}
{{if .Social.Telegram}}<a class="social-telegram" href="{{.Social.Telegram}}">Telegram</a>{{end}}
{{if .Social.LinkedIn}}<a class="social-linkedin" href="{{.Social.LinkedIn}}">LinkedIn</a>{{end}}
</div>
</article>
{{end}}

{{define "footer"}}<footer class="footer">
<div class="footer-brand">
<strong>JobMetric</strong>
<p>Building open-source packages for the Laravel community since 2015.</p>
</div>
<div class="footer-newsletter">
{{if .Submitted}}<p class="newsletter-success">Thanks for subscribing!</p>
{{else}}<form method="post" action="/api/newsletter">
<input type="email" name="email" placeholder="you@example.com" required>
<button type="submit">Subscribe</button>
</form>
{{end}}</div>
<div class="footer-links">
<a href="https://github.com/jobmetric">GitHub</a>
<a href="mailto:info@jobmetric.dev">Contact</a>
</div>
</footer>
</body>
</html>
{{end}}

{{define "home"}}{{template "head" "JobMetric — Laravel Packages"}}
<section class="hero">
<h1>{{.Hero.Title}}</h1>
<p>{{.Hero.Tagline}}</p>
</section>
{{range .Sections}}{{template "section" .}}{{end}}
{{template "footer" .Newsletter}}
{{end}}

{{define "team"}}{{template "head" "JobMetric — Team"}}
<section class="section" id="team-leads">
<h2>Team Lead</h2>
<div class="cards">
{{range .Leads}}{{template "member" .}}{{end}}</div>
</section>
<section class="section" id="team-developers">
<h2>Developers</h2>
<div class="cards">
{{range .Developers}}{{template "member" .}}{{end}}</div>
</section>
{{template "footer" .Newsletter}}
{{end}}
`
