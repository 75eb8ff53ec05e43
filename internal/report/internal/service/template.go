package service

// reportTemplate 排版尽量贴近老版 PDF 报告
const reportTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
body { font-family: Helvetica, Arial, sans-serif; color: #1a2b4c; margin: 24px; }
h1 { font-size: 22px; margin-bottom: 0; }
.sub { color: #5a6b8c; margin-top: 4px; }
.verdict { font-size: 16px; font-weight: bold; color: #0f766e; }
table { border-collapse: collapse; width: 100%; margin-top: 16px; }
th, td { border: 1px solid #d0d7e2; padding: 6px 10px; font-size: 12px; text-align: left; }
th { background: #eef2f8; }
.summary { margin-top: 20px; font-size: 12px; line-height: 1.6; }
</style>
</head>
<body>
<h1>V-Recruitment Interview Report</h1>
<p class="sub">Candidate: {{.CandidateInfo.Name}} &middot; Position: {{.CandidateInfo.Position}}</p>
<p>Overall Score: <b>{{.TotalScoreSum}}/{{.TotalMaxScoreSum}} ({{.OverallScore}}%)</b></p>
<p class="verdict">Recommendation: {{.Recommendation}}</p>

<table>
<tr><th>Round</th><th>Score</th><th>Max Score</th><th>Average</th></tr>
{{range .GroupedByRound}}
<tr><td>{{.Round}}</td><td>{{.Score}}</td><td>{{.MaxScore}}</td><td>{{.AvgScore}}%</td></tr>
{{end}}
</table>

{{if .SectionScores}}
<table>
<tr><th>Section</th><th>Score</th><th>Max</th><th>Comment</th></tr>
{{range .SectionScores}}
<tr><td>{{.Section}}</td><td>{{.Score}}</td><td>{{.Max}}</td><td>{{.Comment}}</td></tr>
{{end}}
</table>
{{end}}

<div class="summary"><b>AI Summary</b><br>{{.AISummary}}</div>
</body>
</html>`
