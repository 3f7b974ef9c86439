// Package catalog provides the research catalog sources that need no
// database: the built-in seed and a YAML file.
package catalog

import (
	"context"
	"time"

	"github.com/researchnexus/nexus/internal/core/domain"
	"github.com/researchnexus/nexus/internal/pkg/latency"
)

const coverBase = "https://images.pexels.com/photos/"

// Seed serves the built-in records after a simulated fetch delay. Every call
// returns a fresh copy.
type Seed struct {
	delay time.Duration
}

func NewSeed(delay time.Duration) Seed { return Seed{delay: delay} }

func (s Seed) Load(ctx context.Context) ([]domain.Research, error) {
	if err := latency.Wait(ctx, s.delay); err != nil {
		return nil, err
	}
	return SeedRecords(), nil
}

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func researcher(id, email, name, created string) domain.Identity {
	return domain.Identity{
		ID:        id,
		Email:     email,
		Name:      name,
		Role:      domain.RoleResearcher,
		CreatedAt: day(created),
	}
}

func cover(photo string) string {
	return coverBase + photo + "/pexels-photo-" + photo + ".jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"
}

// SeedRecords returns the twelve records the platform ships with, newest first.
func SeedRecords() []domain.Research {
	return []domain.Research{
		{
			ID:         "1",
			Title:      "The Impact of Hormonal Fluctuations on Cognitive Performance in Women",
			Abstract:   "This study investigates how hormonal cycles affect cognitive abilities across different phases. We collected data from 500 participants over 6 months, revealing significant correlations between hormone levels and specific cognitive tasks.",
			Tags:       []string{"Hormones", "Cognition", "Women's Health", "Neuroscience"},
			Field:      "Women's Health",
			Author:     researcher("user-1", "sarah.johnson@example.com", "Dr. Sarah Johnson", "2022-01-15"),
			UploadDate: day("2023-07-01"),
			IsPremium:  true,
			Price:      29.99,
			Views:      1250,
			Downloads:  230,
			CoverImage: cover("3825586"),
		},
		{
			ID:         "2",
			Title:      "Pregnancy Complications in Women with Autoimmune Disorders: A Comprehensive Review",
			Abstract:   "This review examines the prevalence and management of pregnancy complications in women with autoimmune conditions. We analyzed data from 200 clinical studies published between 2010-2022, providing recommendations for clinical care.",
			Tags:       []string{"Pregnancy", "Autoimmune", "Clinical Care", "Women's Health"},
			Field:      "Women's Health",
			Author:     researcher("user-2", "emily.chen@example.com", "Dr. Emily Chen", "2021-03-20"),
			UploadDate: day("2023-06-15"),
			IsPremium:  true,
			Price:      34.99,
			Views:      980,
			Downloads:  145,
			CoverImage: cover("7088530"),
		},
		{
			ID:         "3",
			Title:      "Gender Differences in Cardiovascular Disease Diagnosis and Treatment",
			Abstract:   "This research highlights disparities in cardiovascular disease diagnosis between men and women. Our analysis of hospital records from 50 institutions shows that women's symptoms are often misdiagnosed leading to delayed treatment.",
			Tags:       []string{"Cardiovascular", "Gender Bias", "Diagnosis", "Treatment"},
			Field:      "Cardiovascular",
			Author:     researcher("user-3", "michael.wong@example.com", "Dr. Michael Wong", "2020-11-05"),
			UploadDate: day("2023-06-01"),
			Views:      2100,
			Downloads:  430,
			CoverImage: cover("7089401"),
		},
		{
			ID:         "4",
			Title:      "The Role of Estrogen in Neural Plasticity and Neuroprotection",
			Abstract:   "This study examines how estrogen affects neural plasticity and offers neuroprotection. Through animal models and in vitro studies, we demonstrate that estrogen modulates synaptic plasticity and protects against neurodegenerative processes.",
			Tags:       []string{"Estrogen", "Neuroscience", "Neuroprotection", "Hormones"},
			Field:      "Neuroscience",
			Author:     researcher("user-4", "olivia.patel@example.com", "Dr. Olivia Patel", "2021-07-12"),
			UploadDate: day("2023-05-20"),
			IsPremium:  true,
			Price:      24.99,
			Views:      850,
			Downloads:  110,
			CoverImage: cover("8378747"),
		},
		{
			ID:         "5",
			Title:      "Personalized Medicine Approaches for Women with Reproductive Health Disorders",
			Abstract:   "This paper presents novel approaches to personalized medicine for treating reproductive health disorders. We developed AI-driven algorithms that analyze genetic, hormonal, and environmental factors to recommend tailored treatment plans.",
			Tags:       []string{"Personalized Medicine", "Reproductive Health", "AI", "Treatment"},
			Field:      "Reproductive Health",
			Author:     researcher("user-5", "john.davis@example.com", "Dr. John Davis", "2022-02-28"),
			UploadDate: day("2023-05-10"),
			Views:      1520,
			Downloads:  280,
			CoverImage: cover("3938022"),
		},
		{
			ID:         "6",
			Title:      "Maternal Mental Health: Implications for Child Development and Family Functioning",
			Abstract:   "This longitudinal study follows 300 mothers and their children over 5 years, examining how maternal mental health affects child development and family dynamics. Results show significant correlations between maternal depression and behavioral outcomes.",
			Tags:       []string{"Mental Health", "Child Development", "Maternal Health", "Psychology"},
			Field:      "Mental Health",
			Author:     researcher("user-6", "amanda.garcia@example.com", "Dr. Amanda Garcia", "2020-09-15"),
			UploadDate: day("2023-04-25"),
			IsPremium:  true,
			Price:      29.99,
			Views:      910,
			Downloads:  175,
			CoverImage: cover("568021"),
		},
		{
			ID:         "7",
			Title:      "Innovative Treatments for Endometriosis: A Clinical Trial",
			Abstract:   "This paper presents results from a phase II clinical trial of a novel treatment for endometriosis that targets inflammatory pathways. Our findings show a 65% reduction in pain scores and significant improvement in quality of life measures.",
			Tags:       []string{"Endometriosis", "Clinical Trial", "Treatment", "Women's Health"},
			Field:      "Women's Health",
			Author:     researcher("user-7", "robert.kim@example.com", "Dr. Robert Kim", "2021-05-10"),
			UploadDate: day("2023-04-12"),
			IsPremium:  true,
			Price:      39.99,
			Views:      1350,
			Downloads:  290,
			CoverImage: cover("8460233"),
		},
		{
			ID:         "8",
			Title:      "The Effects of Hormonal Contraceptives on Mood Regulation and Mental Health",
			Abstract:   "This study investigates the relationship between hormonal contraceptive use and mood disorders. Our analysis of data from 5000 women reveals significant associations between specific contraceptive formulations and depression risk.",
			Tags:       []string{"Contraceptives", "Mental Health", "Hormones", "Depression"},
			Field:      "Mental Health",
			Author:     researcher("user-8", "jennifer.wilson@example.com", "Dr. Jennifer Wilson", "2022-01-30"),
			UploadDate: day("2023-03-28"),
			Views:      2800,
			Downloads:  620,
			CoverImage: cover("5699514"),
		},
		{
			ID:         "9",
			Title:      "Gender-Specific Immune Responses to Viral Infections",
			Abstract:   "This research examines differences in immune responses between men and women during viral infections. We collected data from COVID-19 patients and found significant variations in cytokine production and antibody responses.",
			Tags:       []string{"Immunology", "Gender Differences", "Viral Infections", "COVID-19"},
			Field:      "Immunology",
			Author:     researcher("user-9", "david.thompson@example.com", "Dr. David Thompson", "2020-12-05"),
			UploadDate: day("2023-03-15"),
			Views:      1950,
			Downloads:  410,
			CoverImage: cover("5910956"),
		},
		{
			ID:         "10",
			Title:      "Biomarkers for Early Detection of Ovarian Cancer",
			Abstract:   "This study identifies novel biomarkers for early-stage ovarian cancer detection. Using proteomic analysis of blood samples from 1000 women, we discovered a panel of five proteins that predict early-stage disease with 92% sensitivity.",
			Tags:       []string{"Ovarian Cancer", "Biomarkers", "Early Detection", "Oncology"},
			Field:      "Oncology",
			Author:     researcher("user-10", "sophia.lee@example.com", "Dr. Sophia Lee", "2021-09-20"),
			UploadDate: day("2023-02-28"),
			IsPremium:  true,
			Price:      49.99,
			Views:      1280,
			Downloads:  320,
			CoverImage: cover("8351553"),
		},
		{
			ID:         "11",
			Title:      "The Influence of Sex Hormones on Autoimmune Disease Progression",
			Abstract:   "This longitudinal study examines how fluctuations in sex hormones affect the progression of autoimmune diseases. We monitored 250 patients with lupus and rheumatoid arthritis over 3 years, revealing distinct patterns of disease activity correlated with hormonal changes.",
			Tags:       []string{"Autoimmune", "Hormones", "Disease Progression", "Rheumatology"},
			Field:      "Immunology",
			Author:     researcher("user-11", "james.brown@example.com", "Dr. James Brown", "2020-08-10"),
			UploadDate: day("2023-02-15"),
			Views:      1420,
			Downloads:  250,
			CoverImage: cover("8464587"),
		},
		{
			ID:         "12",
			Title:      "Genetic Factors in Female-Specific Cardiovascular Risk Profiles",
			Abstract:   "This study investigates genetic variants associated with cardiovascular disease risk specifically in women. Through genome-wide association studies of 10,000 women, we identified several novel loci that predict heart disease risk independently of traditional risk factors.",
			Tags:       []string{"Genetics", "Cardiovascular", "Risk Factors", "Women's Health"},
			Field:      "Cardiovascular",
			Author:     researcher("user-12", "elizabeth.white@example.com", "Dr. Elizabeth White", "2021-11-15"),
			UploadDate: day("2023-01-30"),
			IsPremium:  true,
			Price:      34.99,
			Views:      890,
			Downloads:  170,
			CoverImage: cover("7089020"),
		},
	}
}
