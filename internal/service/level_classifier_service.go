package service

// LevelBand maps a minimum total score to a proficiency label.
type LevelBand struct {
	MinScore float64
	Label    string
}

// Bands are evaluated top-down; the first band whose lower bound the score
// reaches wins, so a score exactly on a boundary lands in the higher band.
// Classification runs on the absolute total score, not the percentage, which
// makes the bands depend on test length.
var levelBands = []LevelBand{
	{46, "Advanced"},
	{40, "Upper Intermediate"},
	{33, "Intermediate"},
	{25, "Pre-Intermediate"},
	{16, "Elementary"},
	{0, "Beginner"},
}

type LevelClassifierService interface {
	Classify(totalScore float64) string
}

type levelClassifierServiceImpl struct{}

func NewLevelClassifierService() LevelClassifierService {
	return &levelClassifierServiceImpl{}
}

func (s *levelClassifierServiceImpl) Classify(totalScore float64) string {
	for _, band := range levelBands {
		if totalScore >= band.MinScore {
			return band.Label
		}
	}
	return levelBands[len(levelBands)-1].Label
}
