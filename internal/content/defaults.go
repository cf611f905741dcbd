package content

import "strings"

// Profile holds the specialty-parameterized defaults used to repair missing
// or undersized fields. Static, immutable at runtime.
type Profile struct {
	DisplayName string
	Title       string
	Tagline     string
	Hero        Hero
	AboutTitle  string
	AboutBody   string
	Services    []Service
	Contact     Contact
	SEO         SEO
}

var profiles = map[string]Profile{
	"general-practice": {
		DisplayName: "General Practice",
		Title:       "Comprehensive Family Healthcare",
		Tagline:     "Caring for your whole family, at every stage of life",
		Hero: Hero{
			Headline:    "Your Health, Our Priority",
			Subheadline: "Trusted primary care for patients of all ages",
			CTAText:     "Book an Appointment",
		},
		AboutTitle: "About Our Practice",
		AboutBody: "Our practice provides comprehensive primary care for the whole family. " +
			"From routine checkups and preventive screenings to the management of chronic " +
			"conditions, our experienced team takes the time to understand your health goals " +
			"and build a long-term relationship with every patient.",
		Services: []Service{
			{Name: "Preventive Checkups", Description: "Routine physicals and health screenings to catch issues early.", Icon: "stethoscope"},
			{Name: "Chronic Disease Management", Description: "Ongoing care plans for diabetes, hypertension, and more.", Icon: "heartbeat"},
			{Name: "Immunizations", Description: "Vaccinations for children and adults, including seasonal flu shots.", Icon: "syringe"},
			{Name: "Minor Procedures", Description: "In-office treatment of minor injuries and conditions.", Icon: "bandage"},
		},
		Contact: Contact{
			Phone:   "(555) 010-1000",
			Email:   "appointments@practice.example.com",
			Address: "100 Medical Plaza, Suite 1",
			Hours:   "Mon-Fri 8:00am-5:00pm",
		},
		SEO: SEO{
			Title:       "Family Medicine & Primary Care",
			Description: "Comprehensive primary care for the whole family: checkups, chronic care, immunizations, and more.",
			Keywords:    []string{"family medicine", "primary care", "checkup"},
		},
	},
	"cardiology": {
		DisplayName: "Cardiology",
		Title:       "Advanced Cardiovascular Care",
		Tagline:     "Expert heart care you can trust",
		Hero: Hero{
			Headline:    "Keeping Your Heart Strong",
			Subheadline: "Board-certified cardiologists with state-of-the-art diagnostics",
			CTAText:     "Schedule a Consultation",
		},
		AboutTitle: "About Our Cardiology Practice",
		AboutBody: "Our cardiology practice delivers complete cardiovascular care, from " +
			"prevention and diagnosis to long-term treatment. We combine advanced imaging " +
			"and monitoring technology with an individualized approach, so every patient " +
			"receives a care plan built around their heart health.",
		Services: []Service{
			{Name: "Cardiac Consultations", Description: "Thorough evaluations of heart health and risk factors.", Icon: "heartbeat"},
			{Name: "Echocardiography", Description: "Non-invasive ultrasound imaging of heart structure and function.", Icon: "monitor"},
			{Name: "Stress Testing", Description: "Exercise and pharmacologic testing to assess cardiac performance.", Icon: "activity"},
			{Name: "Hypertension Management", Description: "Personalized plans to control blood pressure and cholesterol.", Icon: "gauge"},
		},
		Contact: Contact{
			Phone:   "(555) 010-2000",
			Email:   "care@heartclinic.example.com",
			Address: "200 Cardiology Center, Suite 5",
			Hours:   "Mon-Fri 8:00am-5:00pm",
		},
		SEO: SEO{
			Title:       "Cardiology & Heart Care",
			Description: "Advanced cardiovascular care: consultations, echocardiography, stress testing, and hypertension management.",
			Keywords:    []string{"cardiology", "heart care", "cardiologist"},
		},
	},
	"dentistry": {
		DisplayName: "Dentistry",
		Title:       "Modern Dental Care for Every Smile",
		Tagline:     "Healthy teeth, confident smiles",
		Hero: Hero{
			Headline:    "A Healthier Smile Starts Here",
			Subheadline: "Gentle, comprehensive dental care for the whole family",
			CTAText:     "Book a Cleaning",
		},
		AboutTitle: "About Our Dental Practice",
		AboutBody: "Our dental practice offers complete oral healthcare in a comfortable, " +
			"modern setting. From routine cleanings and fillings to cosmetic and " +
			"restorative dentistry, we focus on prevention first and use the latest " +
			"techniques to keep every visit as gentle as possible.",
		Services: []Service{
			{Name: "Cleanings & Exams", Description: "Routine hygiene visits and comprehensive oral examinations.", Icon: "tooth"},
			{Name: "Fillings & Crowns", Description: "Durable restorations that blend naturally with your teeth.", Icon: "shield"},
			{Name: "Teeth Whitening", Description: "Professional whitening for a brighter, more confident smile.", Icon: "sparkle"},
			{Name: "Dental Implants", Description: "Permanent replacements for missing teeth.", Icon: "anchor"},
		},
		Contact: Contact{
			Phone:   "(555) 010-3000",
			Email:   "smile@dentalcare.example.com",
			Address: "300 Dental Arts Building, Suite 2",
			Hours:   "Mon-Sat 9:00am-6:00pm",
		},
		SEO: SEO{
			Title:       "Family & Cosmetic Dentistry",
			Description: "Modern dental care: cleanings, fillings, whitening, implants, and more for the whole family.",
			Keywords:    []string{"dentist", "dental care", "teeth cleaning"},
		},
	},
	"dermatology": {
		DisplayName: "Dermatology",
		Title:       "Expert Skin Health & Treatment",
		Tagline:     "Healthy skin at every age",
		Hero: Hero{
			Headline:    "Your Skin Deserves Expert Care",
			Subheadline: "Medical and cosmetic dermatology under one roof",
			CTAText:     "Request an Appointment",
		},
		AboutTitle: "About Our Dermatology Practice",
		AboutBody: "Our dermatology practice treats the full range of skin, hair, and nail " +
			"conditions. We pair careful medical evaluation with proven treatments, " +
			"whether you are managing a chronic condition, concerned about a changing " +
			"mole, or exploring cosmetic options.",
		Services: []Service{
			{Name: "Skin Cancer Screening", Description: "Full-body exams and mole monitoring for early detection.", Icon: "search"},
			{Name: "Acne Treatment", Description: "Personalized regimens for teens and adults.", Icon: "droplet"},
			{Name: "Eczema & Psoriasis Care", Description: "Long-term management of chronic skin conditions.", Icon: "leaf"},
			{Name: "Cosmetic Dermatology", Description: "Botox, fillers, and laser treatments administered by physicians.", Icon: "sparkle"},
		},
		Contact: Contact{
			Phone:   "(555) 010-4000",
			Email:   "skin@dermclinic.example.com",
			Address: "400 Skin Health Center, Suite 3",
			Hours:   "Mon-Fri 9:00am-5:00pm",
		},
		SEO: SEO{
			Title:       "Dermatology & Skin Care",
			Description: "Medical and cosmetic dermatology: screenings, acne care, chronic condition management.",
			Keywords:    []string{"dermatology", "skin care", "dermatologist"},
		},
	},
	"pediatrics": {
		DisplayName: "Pediatrics",
		Title:       "Compassionate Care for Growing Kids",
		Tagline:     "Healthcare that grows with your child",
		Hero: Hero{
			Headline:    "Caring for Kids from Day One",
			Subheadline: "Pediatric care for newborns through adolescence",
			CTAText:     "Schedule a Visit",
		},
		AboutTitle: "About Our Pediatric Practice",
		AboutBody: "Our pediatric practice partners with families to keep children healthy " +
			"from birth through the teenage years. Well-child visits, vaccinations, " +
			"developmental screenings, and same-day sick care are all delivered in a " +
			"warm, kid-friendly environment.",
		Services: []Service{
			{Name: "Well-Child Visits", Description: "Regular checkups tracking growth and development.", Icon: "baby"},
			{Name: "Vaccinations", Description: "Complete immunization schedules for every age.", Icon: "syringe"},
			{Name: "Same-Day Sick Care", Description: "Prompt appointments when your child is unwell.", Icon: "thermometer"},
			{Name: "Developmental Screening", Description: "Early identification of developmental and behavioral concerns.", Icon: "puzzle"},
		},
		Contact: Contact{
			Phone:   "(555) 010-5000",
			Email:   "kids@pediatrics.example.com",
			Address: "500 Children's Health Pavilion, Suite 1",
			Hours:   "Mon-Fri 8:00am-6:00pm, Sat 9:00am-1:00pm",
		},
		SEO: SEO{
			Title:       "Pediatrics & Child Healthcare",
			Description: "Pediatric care for newborns through adolescence: well visits, vaccinations, sick care.",
			Keywords:    []string{"pediatrician", "child healthcare", "vaccinations"},
		},
	},
	"orthopedics": {
		DisplayName: "Orthopedics",
		Title:       "Restoring Movement, Relieving Pain",
		Tagline:     "Get back to doing what you love",
		Hero: Hero{
			Headline:    "Expert Care for Bones and Joints",
			Subheadline: "From sports injuries to joint replacement",
			CTAText:     "Book an Evaluation",
		},
		AboutTitle: "About Our Orthopedic Practice",
		AboutBody: "Our orthopedic practice diagnoses and treats conditions of the bones, " +
			"joints, muscles, and spine. Whether you are recovering from a sports injury, " +
			"managing arthritis, or considering joint replacement, our surgeons and " +
			"therapists build a plan to restore your mobility.",
		Services: []Service{
			{Name: "Sports Injury Treatment", Description: "Diagnosis and rehabilitation for athletes of all levels.", Icon: "activity"},
			{Name: "Joint Replacement", Description: "Advanced hip and knee replacement surgery.", Icon: "bone"},
			{Name: "Spine Care", Description: "Conservative and surgical treatment of back and neck conditions.", Icon: "alignment"},
			{Name: "Physical Therapy", Description: "On-site rehabilitation guided by licensed therapists.", Icon: "dumbbell"},
		},
		Contact: Contact{
			Phone:   "(555) 010-6000",
			Email:   "ortho@jointcare.example.com",
			Address: "600 Orthopedic Institute, Suite 4",
			Hours:   "Mon-Fri 7:30am-5:30pm",
		},
		SEO: SEO{
			Title:       "Orthopedics & Sports Medicine",
			Description: "Orthopedic care: sports injuries, joint replacement, spine care, physical therapy.",
			Keywords:    []string{"orthopedics", "joint replacement", "sports medicine"},
		},
	},
	"gynecology": {
		DisplayName: "Gynecology",
		Title:       "Dedicated Women's Healthcare",
		Tagline:     "Care for every season of a woman's life",
		Hero: Hero{
			Headline:    "Women's Health, Expertly Delivered",
			Subheadline: "Obstetrics and gynecology in one trusted practice",
			CTAText:     "Schedule an Appointment",
		},
		AboutTitle: "About Our Practice",
		AboutBody: "Our practice provides comprehensive obstetric and gynecologic care in a " +
			"supportive, respectful environment. From annual wellness exams and family " +
			"planning to prenatal care and menopause management, we are here for every " +
			"stage of a woman's life.",
		Services: []Service{
			{Name: "Annual Wellness Exams", Description: "Preventive screenings and personalized health guidance.", Icon: "clipboard"},
			{Name: "Prenatal Care", Description: "Complete care through pregnancy and delivery.", Icon: "heart"},
			{Name: "Family Planning", Description: "Contraception counseling and fertility guidance.", Icon: "calendar"},
			{Name: "Menopause Management", Description: "Relief and support through hormonal transitions.", Icon: "sun"},
		},
		Contact: Contact{
			Phone:   "(555) 010-7000",
			Email:   "care@womenshealth.example.com",
			Address: "700 Women's Health Center, Suite 2",
			Hours:   "Mon-Fri 8:30am-5:00pm",
		},
		SEO: SEO{
			Title:       "Gynecology & Women's Health",
			Description: "Comprehensive women's healthcare: wellness exams, prenatal care, family planning.",
			Keywords:    []string{"gynecology", "women's health", "obstetrics"},
		},
	},
	"neurology": {
		DisplayName: "Neurology",
		Title:       "Specialized Neurological Care",
		Tagline:     "Expertise for complex conditions of the brain and nerves",
		Hero: Hero{
			Headline:    "Answers for Neurological Conditions",
			Subheadline: "Diagnosis and treatment by fellowship-trained neurologists",
			CTAText:     "Request a Consultation",
		},
		AboutTitle: "About Our Neurology Practice",
		AboutBody: "Our neurology practice evaluates and treats disorders of the brain, " +
			"spinal cord, and nervous system. We take a methodical, evidence-based " +
			"approach to conditions like migraine, epilepsy, stroke recovery, and " +
			"movement disorders, supported by modern diagnostic testing.",
		Services: []Service{
			{Name: "Migraine & Headache Care", Description: "Personalized prevention and treatment plans.", Icon: "brain"},
			{Name: "Epilepsy Management", Description: "Seizure evaluation, monitoring, and medication management.", Icon: "zap"},
			{Name: "Stroke Follow-Up", Description: "Recovery planning and secondary prevention.", Icon: "refresh"},
			{Name: "Movement Disorders", Description: "Care for Parkinson's disease, tremor, and related conditions.", Icon: "move"},
		},
		Contact: Contact{
			Phone:   "(555) 010-8000",
			Email:   "neuro@brainhealth.example.com",
			Address: "800 Neuroscience Center, Suite 6",
			Hours:   "Mon-Fri 8:00am-4:30pm",
		},
		SEO: SEO{
			Title:       "Neurology & Brain Health",
			Description: "Neurological care: migraine, epilepsy, stroke follow-up, and movement disorders.",
			Keywords:    []string{"neurology", "neurologist", "migraine treatment"},
		},
	},
	"ophthalmology": {
		DisplayName: "Ophthalmology",
		Title:       "Complete Vision & Eye Care",
		Tagline:     "See the world clearly",
		Hero: Hero{
			Headline:    "Protecting Your Vision for Life",
			Subheadline: "Comprehensive eye exams, surgery, and vision correction",
			CTAText:     "Book an Eye Exam",
		},
		AboutTitle: "About Our Eye Care Practice",
		AboutBody: "Our ophthalmology practice offers complete medical and surgical eye " +
			"care. From routine vision exams to cataract surgery and LASIK, our " +
			"surgeons use precise, modern techniques to protect and restore sight at " +
			"every age.",
		Services: []Service{
			{Name: "Comprehensive Eye Exams", Description: "Vision testing and full ocular health evaluation.", Icon: "eye"},
			{Name: "Cataract Surgery", Description: "Advanced lens replacement with rapid recovery.", Icon: "lens"},
			{Name: "LASIK & Vision Correction", Description: "Laser procedures to reduce dependence on glasses.", Icon: "zap"},
			{Name: "Glaucoma Management", Description: "Monitoring and treatment to preserve vision.", Icon: "gauge"},
		},
		Contact: Contact{
			Phone:   "(555) 010-9000",
			Email:   "vision@eyecare.example.com",
			Address: "900 Vision Center, Suite 1",
			Hours:   "Mon-Fri 8:00am-5:00pm",
		},
		SEO: SEO{
			Title:       "Ophthalmology & Eye Care",
			Description: "Complete eye care: exams, cataract surgery, LASIK, glaucoma management.",
			Keywords:    []string{"ophthalmology", "eye care", "cataract surgery"},
		},
	},
	"psychiatry": {
		DisplayName: "Psychiatry",
		Title:       "Mental Health Care That Listens",
		Tagline:     "Support for your mind, on your terms",
		Hero: Hero{
			Headline:    "You Don't Have to Face It Alone",
			Subheadline: "Confidential, compassionate psychiatric care",
			CTAText:     "Schedule a Session",
		},
		AboutTitle: "About Our Practice",
		AboutBody: "Our psychiatric practice provides confidential evaluation and treatment " +
			"for depression, anxiety, ADHD, and other mental health conditions. We " +
			"combine medication management with therapy referrals and take the time to " +
			"understand each patient's story.",
		Services: []Service{
			{Name: "Psychiatric Evaluation", Description: "Comprehensive initial assessments and diagnosis.", Icon: "clipboard"},
			{Name: "Medication Management", Description: "Careful prescribing with regular follow-up.", Icon: "pill"},
			{Name: "Anxiety & Depression Care", Description: "Evidence-based treatment plans tailored to you.", Icon: "heart"},
			{Name: "ADHD Treatment", Description: "Assessment and management for children and adults.", Icon: "focus"},
		},
		Contact: Contact{
			Phone:   "(555) 011-0000",
			Email:   "care@mindhealth.example.com",
			Address: "1000 Behavioral Health Building, Suite 3",
			Hours:   "Mon-Fri 9:00am-7:00pm",
		},
		SEO: SEO{
			Title:       "Psychiatry & Mental Health",
			Description: "Confidential psychiatric care: evaluations, medication management, anxiety and depression treatment.",
			Keywords:    []string{"psychiatry", "mental health", "therapy"},
		},
	},
}

// DefaultsFor returns the defaults profile for a specialty, degrading to the
// general-practice profile for anything unknown.
func DefaultsFor(specialty string) Profile {
	if p, ok := profiles[strings.ToLower(strings.TrimSpace(specialty))]; ok {
		return p
	}
	return profiles["general-practice"]
}

// KnownSpecialties returns the specialties with a defaults profile.
func KnownSpecialties() []string {
	out := make([]string, 0, len(profiles))
	for k := range profiles {
		out = append(out, k)
	}
	return out
}
