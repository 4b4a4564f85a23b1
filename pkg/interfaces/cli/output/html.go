package output

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/vsinha/transferplan/pkg/application/dto"
)

// reportTemplate renders a self-contained transfer plan report
const reportTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Transfer Plan {{.RunID}}</title>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 2em; color: #222; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; margin-top: 1em; }
th, td { border: 1px solid #ccc; padding: 0.4em 0.8em; text-align: left; }
th { background: #f3f3f3; }
tr.cross-region td { background: #fff7e6; }
.summary { margin-top: 0.5em; color: #555; }
</style>
</head>
<body>
<h1>Transfer Plan</h1>
<div class="summary">
<p>Run {{.RunID}} generated at {{.GeneratedAt.Format "2006-01-02 15:04:05"}}</p>
<p>{{.Summary.InstructionCount}} transfers
({{.Summary.IntraRegionCount}} intra-region, {{.Summary.CrossRegionCount}} cross-region),
total quantity {{.Summary.TotalQuantity}}, unmet need {{.Summary.UnmetNeed}}</p>
</div>
<table>
<tr><th>Type</th><th>From Depot</th><th>To Depot</th><th>Item</th><th>Quantity</th></tr>
{{range .Instructions}}
<tr class="{{.Classification}}">
<td>{{.Classification}}</td>
<td>{{.FromDepot}}</td>
<td>{{.ToDepot}}</td>
<td>{{.Item}}</td>
<td>{{.Quantity}}</td>
</tr>
{{end}}
</table>
</body>
</html>
`

// generateHTMLOutput writes a standalone HTML report of the transfer plan
func generateHTMLOutput(result *dto.TransferResult, config Config) error {
	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse report template: %w", err)
	}

	path := filepath.Join(config.OutputDir, "transfer_plan.html")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := tmpl.Execute(file, result); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if config.Verbose {
		fmt.Printf("📄 HTML report written to %s\n", path)
	}
	return nil
}
