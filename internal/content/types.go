package content

// Category is a UK Highway Code topic. The string values double as the
// labels shown on screen and the topic names sent to the model.
type Category string

const (
	CategoryGeneral   Category = "General Rules"
	CategorySigns     Category = "Road Signs"
	CategorySafety    Category = "Safety Margins"
	CategoryHazard    Category = "Hazard Awareness"
	CategoryMotorway  Category = "Motorway Rules"
	CategoryDocuments Category = "Documents & Accidents"
	CategoryMock      Category = "Full Mock Test"
)

// Categories lists every quiz category in menu order.
var Categories = []Category{
	CategoryGeneral,
	CategorySigns,
	CategorySafety,
	CategoryHazard,
	CategoryMotorway,
	CategoryDocuments,
	CategoryMock,
}

// StudyCategories lists the topics available in learn mode. The mock
// test is a quiz format, not a study topic.
var StudyCategories = []Category{
	CategoryGeneral,
	CategorySigns,
	CategorySafety,
	CategoryHazard,
	CategoryMotorway,
	CategoryDocuments,
}

// Difficulty is a question difficulty level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties lists the levels in ascending order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Question counts per quiz. The mock test mirrors the length of the
// real theory test's style; topic quizzes stay short.
const (
	TopicQuestionCount = 5
	MockQuestionCount  = 20
)

// QuestionCount returns how many questions a quiz in the category has.
func QuestionCount(c Category) int {
	if c == CategoryMock {
		return MockQuestionCount
	}
	return TopicQuestionCount
}

// StudySection is one rule block within a study guide.
type StudySection struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// RoadSign describes a sign or road marking relevant to a topic.
type RoadSign struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Shape       string `json:"shape" validate:"required"`
	Icon        string `json:"icon" validate:"required"`
}

// StudyGuide is the structured learn-mode content for one topic.
type StudyGuide struct {
	Title        string         `json:"title" validate:"required"`
	Introduction string         `json:"introduction" validate:"required"`
	KeyRules     []StudySection `json:"keyRules" validate:"min=1,dive"`
	CommonSigns  []RoadSign     `json:"commonSigns" validate:"dive"`
}
