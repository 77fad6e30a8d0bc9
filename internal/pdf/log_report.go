package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"haolaplus/internal/models"
)

// Generator — interface, commode à moquer dans les tests.
type Generator interface {
	GenerateLogReport(entries []*models.LogActivity) (string, error)
}

// ReportGenerator écrit les exports PDF sous RootDir.
type ReportGenerator struct {
	RootDir  string // racine de stockage, par exemple "./files"
	FontPath string // chemin du TTF, par exemple "assets/fonts/DejaVuSans.ttf"
	fontName string
}

func NewReportGenerator(rootDir, fontPath string) *ReportGenerator {
	g := &ReportGenerator{
		RootDir:  filepath.Clean(rootDir),
		FontPath: fontPath,
		fontName: "DejaVu",
	}
	if _, err := os.Stat(fontPath); err != nil {
		// TTF absent : repli sur une police de base, l'export reste servi
		g.FontPath = ""
		g.fontName = "Helvetica"
	}
	return g
}

// GenerateLogReport rend le journal d'activité, les entrées les plus récentes
// en premier, et renvoie le chemin absolu du fichier produit.
func (g *ReportGenerator) GenerateLogReport(entries []*models.LogActivity) (string, error) {
	filename := fmt.Sprintf("journal_activite_%s.pdf", time.Now().Format("20060102_150405"))
	absPath, err := g.ensureTarget(filename)
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Journal d'activité", false)
	pdf.SetAuthor("Haola+", false)
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 20)

	g.addUTF8Font(pdf)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 16)
	pdf.CellFormat(0, 10, "Journal d'activité", "", 1, "C", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Exporté le %s — %d entrées", time.Now().Format("02/01/2006 15:04"), len(entries)), "", 1, "C", false, 0, "")
	g.hr(pdf)
	pdf.Ln(2)

	for _, e := range entries {
		pdf.SetFont(g.fontName, "B", 11)
		pdf.CellFormat(0, 6, fmt.Sprintf("%s — %s", e.CreatedAt.Format("02/01/2006 15:04:05"), e.Subject), "", 1, "L", false, 0, "")

		pdf.SetFont(g.fontName, "", 10)
		g.kvLine(pdf, "Requête", fmt.Sprintf("%s %s", e.Method, e.URL))
		g.kvLine(pdf, "Adresse IP", e.IP)
		if e.Agent != nil {
			g.kvLine(pdf, "Agent", *e.Agent)
		}
		if e.UserName != nil {
			g.kvLine(pdf, "Utilisateur", *e.UserName)
		}
		pdf.Ln(1)
		g.hr(pdf)
	}

	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(g.fontName, "", 9)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	if err := pdf.OutputFileAndClose(absPath); err != nil {
		return "", err
	}
	return absPath, nil
}

func (g *ReportGenerator) ensureTarget(filename string) (string, error) {
	if err := os.MkdirAll(g.RootDir, 0o755); err != nil {
		return "", fmt.Errorf("create files dir: %w", err)
	}
	filename = filepath.Base(filename)
	return filepath.Join(g.RootDir, filename), nil
}

func (g *ReportGenerator) addUTF8Font(pdf *gofpdf.Fpdf) {
	if g.FontPath == "" {
		return
	}
	pdf.AddUTF8Font(g.fontName, "", g.FontPath)
	pdf.AddUTF8Font(g.fontName, "B", g.FontPath)
}

func (g *ReportGenerator) kvLine(pdf *gofpdf.Fpdf, key, val string) {
	pdf.SetFont(g.fontName, "B", 10)
	pdf.CellFormat(30, 5, key+" :", "", 0, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
	pdf.MultiCell(0, 5, val, "", "L", false)
}

func (g *ReportGenerator) hr(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 1
	pdf.SetLineWidth(0.2)
	pdf.Line(15, y, 195, y)
	pdf.SetY(y + 2)
}
