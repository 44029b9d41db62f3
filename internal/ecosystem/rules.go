package ecosystem

// Rules holds the constants of one simulation. They are fixed when the
// simulator is built and never change afterwards.
type Rules struct {
	MaxTurns int

	InitialPlants     int
	InitialHerbivores int
	InitialPredators  int

	// Producer growth per turn: floor(plants*PlantGrowthRate) + PlantGrowthBase.
	PlantGrowthRate float64
	PlantGrowthBase int

	// Interventions
	SeedCount              int
	SeedsPerBonusHerbivore int // 0 disables the planting bonus
	HerbivoresAdded        int
	PredatorsAdded         int

	// Per-capita food needs
	HerbivoreNeed int
	PredatorNeed  int

	// Population-proportional reproduction
	HerbivoreReproduction float64
	PredatorReproduction  float64

	// Random events. Chances are band widths checked in order against one draw.
	DroughtChance   float64
	DroughtLoss     float64
	DiseaseChance   float64
	DiseaseLoss     float64
	MigrationChance float64
	MigrationMin    int
	MigrationMax    int
}

// DefaultRules returns the canonical Flora & Fauna constants.
func DefaultRules() Rules {
	return Rules{
		MaxTurns: 30,

		InitialPlants:     50,
		InitialHerbivores: 10,
		InitialPredators:  3,

		PlantGrowthRate: 0.10,
		PlantGrowthBase: 5,

		SeedCount:              10,
		SeedsPerBonusHerbivore: 10,
		HerbivoresAdded:        2,
		PredatorsAdded:         1,

		HerbivoreNeed: 2,
		PredatorNeed:  1,

		HerbivoreReproduction: 0.20,
		PredatorReproduction:  0.10,

		DroughtChance:   0.05,
		DroughtLoss:     0.20,
		DiseaseChance:   0.03,
		DiseaseLoss:     0.30,
		MigrationChance: 0.02,
		MigrationMin:    1,
		MigrationMax:    2,
	}
}

// InitialState returns the state a new simulation starts from.
func (r Rules) InitialState() State {
	return State{
		Turn:       1,
		Plants:     r.InitialPlants,
		Herbivores: r.InitialHerbivores,
		Predators:  r.InitialPredators,
	}
}
