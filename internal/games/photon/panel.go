package photon

// Application is one real-world use of photon detection shown in the side panel.
type Application struct {
	Title       string
	Description string
}

// Applications rotate through the side panel while playing.
var Applications = []Application{
	{"1 Solar Cell", "Light to Current"},
	{"2 PET Scan", "Photon to Imaging"},
	{"3 Fiber Optic", "Photon to Signal"},
	{"4 Night Vision", "Photon to Vision"},
}

// Legend texts in the order they are drawn under the application.
const (
	LegendPhoton   = "Photon → Blue"
	LegendElectron = "Electron → Orange"
	LegendHole     = "Hole → Yellow"
)

// Energy band labels.
const (
	LabelConduction = "Conduction"
	LabelValence    = "Valence"
)

// Title and credits shown on the intro screen.
const (
	IntroTitle    = "Photon → Power: A Game-Based Approach for Understanding Solar Panel Working"
	IntroSubtitle = "By Alankrit (21102064), Modit(21803019), Aviral(21803021) & Swastik(21803017) | Batch B12"
	WindowTitle   = "⚡ Photon → Electricity Simulation Game"
)
