package constant

// Debate structure
const (
	MaxRounds          = 5
	MessagesPerRound   = 4 // round advances once it holds at least this many messages
	MinCycleMessages   = 4
	MaxCycleMessages   = 6
	ClaimProbability   = 0.4
	CiteProbability    = 0.6
	SeedCiteProbabilty = 0.65
	FlagProbability    = 0.05 // seeding only, the cycle never flags
)

// RoundNames index is round_number - 1.
var RoundNames = [MaxRounds]string{"Define", "Propose", "Stress Test", "Converge", "Implementation"}

// SeedVersion guards the seeding job. Bump it to allow a re-seed.
const SeedVersion = "v2-2026-02-09"
