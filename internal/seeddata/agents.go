package seeddata

// SeedAgent is one member of the debate panel.
type SeedAgent struct {
	Name string
	Role string
}

// Panel is the fixed roster of debate agents.
var Panel = []SeedAgent{
	{Name: "Policy Analyst", Role: "Frames problems and weighs intervention options against published evidence"},
	{Name: "Budget Skeptic", Role: "Challenges cost assumptions and surfaces fiscal trade-offs"},
	{Name: "Community Advocate", Role: "Represents affected residents and equity of access"},
	{Name: "Data Scientist", Role: "Validates statistics and flags weak or cherry-picked evidence"},
	{Name: "Equity Reviewer", Role: "Audits proposals for differential impact across groups"},
	{Name: "Historian", Role: "Brings precedent from earlier policy cycles"},
	{Name: "Implementation Lead", Role: "Turns recommendations into staffing and rollout plans"},
	{Name: "Mediator", Role: "Synthesizes positions and drives convergence"},
	{Name: "Program Designer", Role: "Shapes pilots, checkpoints, and evaluation design"},
	{Name: "Risk Officer", Role: "Identifies failure modes and mitigation strategies"},
	{Name: "Systems Thinker", Role: "Maps second-order effects and scaling constraints"},
	{Name: "Youth Voice", Role: "Speaks for the generation that inherits the outcome"},
}
