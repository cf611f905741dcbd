package classifier

// SpecialtyKeywords pairs a specialty identifier with its keyword set.
type SpecialtyKeywords struct {
	Specialty string
	Keywords  []string
}

// Lexicon is the ordered set of supported specialties. Order matters: score
// ties resolve to the first declared specialty, a defined but otherwise
// arbitrary tie-break.
type Lexicon []SpecialtyKeywords

// Specialties returns the closed set of specialty identifiers in order.
func (l Lexicon) Specialties() []string {
	out := make([]string, len(l))
	for i, s := range l {
		out[i] = s.Specialty
	}
	return out
}

// Contains reports whether specialty is part of the closed set.
func (l Lexicon) Contains(specialty string) bool {
	for _, s := range l {
		if s.Specialty == specialty {
			return true
		}
	}
	return false
}

// DefaultLexicon covers the supported medical specialties. Loaded once,
// immutable at runtime.
func DefaultLexicon() Lexicon {
	return Lexicon{
		{
			Specialty: "general-practice",
			Keywords: []string{
				"general practice", "family medicine", "primary care",
				"checkup", "check-up", "preventive care", "wellness",
				"family doctor", "general practitioner", "immunization",
			},
		},
		{
			Specialty: "cardiology",
			Keywords: []string{
				"cardiology", "cardiologist", "heart", "cardiac",
				"cardiovascular", "blood pressure", "hypertension",
				"arrhythmia", "echocardiogram", "angioplasty", "cholesterol",
			},
		},
		{
			Specialty: "dentistry",
			Keywords: []string{
				"dentistry", "dentist", "dental", "teeth", "tooth",
				"orthodontic", "braces", "implant", "root canal",
				"whitening", "oral hygiene", "cavity", "crown",
			},
		},
		{
			Specialty: "dermatology",
			Keywords: []string{
				"dermatology", "dermatologist", "skin", "acne", "eczema",
				"psoriasis", "mole", "rash", "botox", "laser treatment",
			},
		},
		{
			Specialty: "pediatrics",
			Keywords: []string{
				"pediatrics", "pediatrician", "children", "child", "infant",
				"newborn", "vaccination", "adolescent", "kids",
			},
		},
		{
			Specialty: "orthopedics",
			Keywords: []string{
				"orthopedics", "orthopedic", "bone", "joint", "fracture",
				"knee", "hip replacement", "spine", "sports injury",
				"arthritis", "physical therapy",
			},
		},
		{
			Specialty: "gynecology",
			Keywords: []string{
				"gynecology", "gynecologist", "obstetrics", "pregnancy",
				"prenatal", "women's health", "fertility", "menopause",
			},
		},
		{
			Specialty: "neurology",
			Keywords: []string{
				"neurology", "neurologist", "brain", "migraine", "epilepsy",
				"stroke", "parkinson", "alzheimer", "nerve", "seizure",
			},
		},
		{
			Specialty: "ophthalmology",
			Keywords: []string{
				"ophthalmology", "ophthalmologist", "eye", "vision",
				"cataract", "glaucoma", "lasik", "retina", "optometry",
			},
		},
		{
			Specialty: "psychiatry",
			Keywords: []string{
				"psychiatry", "psychiatrist", "mental health", "depression",
				"anxiety", "therapy", "counseling", "adhd", "psychotherapy",
			},
		},
	}
}
