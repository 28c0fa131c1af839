package seeddata

import "signal-for-good-be/internal/entity"

// Topic is one debatable policy question within a bucket.
type Topic struct {
	Title    string
	Question string
	Hook     string
}

// TopicsByBucket holds the curated mission catalog, 20 topics per bucket.
var TopicsByBucket = map[entity.BucketSlug][]Topic{
	entity.BucketEducation: {
		{Title: "Phone bans in K-12 classrooms", Question: "Should schools enforce complete phone bans during class hours?", Hook: "France banned phones. US schools are split. What does the evidence say?"},
		{Title: "AI tutoring equity in Title I schools", Question: "Can AI tutoring close achievement gaps without widening the digital divide?", Hook: "AI tutors promise personalized learning but require infrastructure low-income schools lack."},
		{Title: "Universal pre-K funding models", Question: "What funding model best sustains universal pre-K without quality trade-offs?", Hook: "States that launched universal pre-K saw mixed quality results."},
		{Title: "Teacher pay restructuring", Question: "Should teacher compensation be restructured to include performance incentives?", Hook: "The average teacher salary hasn't kept pace with inflation since 2010."},
		{Title: "Community college free tuition impact", Question: "Does free community college tuition increase completion rates?", Hook: "Tennessee Promise showed enrollment spikes but completion remained flat."},
		{Title: "School resource officers effectiveness", Question: "Do school resource officers improve safety or worsen school-to-prison pipeline?", Hook: "Suspension rates correlate with SRO presence in some districts."},
		{Title: "Dual enrollment program expansion", Question: "Should dual enrollment be available to all high school students regardless of GPA?", Hook: "Dual enrollment students graduate college at higher rates."},
		{Title: "Standardized testing alternatives", Question: "What assessment models can replace standardized tests while maintaining accountability?", Hook: "Portfolio-based assessment pilots show promise in Vermont and New Hampshire."},
		{Title: "School meal program universality", Question: "Should universal free school meals replace means-tested programs?", Hook: "Schools with universal meals see reduced stigma and higher participation."},
		{Title: "Digital literacy curriculum mandates", Question: "Should digital literacy be a required subject from elementary school?", Hook: "Only 11 states require computer science education in K-12."},
		{Title: "Charter school accountability", Question: "How should charter school performance be measured against traditional public schools?", Hook: "Charter school results vary dramatically by state regulatory framework."},
		{Title: "Student mental health services in schools", Question: "Should schools be required to provide on-site mental health counselors?", Hook: "Student anxiety and depression rates have doubled since 2012."},
		{Title: "Bilingual education program models", Question: "Which bilingual education model produces the best long-term outcomes?", Hook: "Dual-language programs outperform English-only after 6 years."},
		{Title: "College admissions reform post-affirmative action", Question: "How should colleges achieve diversity after the Supreme Court ruling?", Hook: "Applications from underrepresented groups dropped 20% at selective schools."},
		{Title: "Career and technical education funding", Question: "Should CTE programs receive equal funding as college-prep tracks?", Hook: "CTE graduates earn 12% more than peers in the first decade after high school."},
		{Title: "Remote learning infrastructure", Question: "What infrastructure is needed to make remote learning effective long-term?", Hook: "30% of rural students lack reliable broadband for synchronous learning."},
		{Title: "Teacher recruitment from STEM fields", Question: "How can schools recruit more STEM professionals into teaching?", Hook: "57% of STEM teacher positions go unfilled in high-need districts."},
		{Title: "School funding formula reform", Question: "Should per-pupil funding be weighted by student need rather than property tax base?", Hook: "The richest districts spend 3x more per student than the poorest."},
		{Title: "Early childhood literacy interventions", Question: "Which early literacy interventions show the strongest evidence of impact?", Hook: "Children not reading at grade level by 3rd grade are 4x more likely to drop out."},
		{Title: "Higher education accreditation reform", Question: "Does the current accreditation system protect students or entrench incumbents?", Hook: "Accreditation standards haven't meaningfully changed since the 1990s."},
	},
	entity.BucketJobs: {
		{Title: "Gig worker classification and protections", Question: "Should gig workers be classified as employees with full benefits?", Hook: "58 million Americans do gig work. Most lack health insurance through their platform."},
		{Title: "AI displacement and workforce retraining", Question: "What retraining programs effectively help workers displaced by automation?", Hook: "McKinsey estimates 30% of work hours could be automated by 2030."},
		{Title: "Four-day work week feasibility", Question: "Can a four-day work week maintain productivity across industries?", Hook: "UK pilot: 92% of companies kept the four-day week after the trial."},
		{Title: "Minimum wage regional adjustment", Question: "Should minimum wage be set regionally based on cost of living?", Hook: "Federal minimum wage hasn't changed since 2009."},
		{Title: "Portable benefits systems", Question: "Can portable benefits work across employers and employment types?", Hook: "Workers change jobs 12 times on average. Benefits shouldn't reset each time."},
		{Title: "Apprenticeship expansion beyond trades", Question: "Should the apprenticeship model expand to tech, healthcare, and white-collar fields?", Hook: "Germany's apprenticeship system covers 330 occupations. The US covers fewer than 50."},
		{Title: "Remote work tax implications", Question: "How should tax policy adapt to permanent remote and hybrid work?", Hook: "Remote workers may owe taxes in multiple states simultaneously."},
		{Title: "Fair chance hiring for formerly incarcerated", Question: "Do ban-the-box policies increase employment without increasing risk?", Hook: "70 million Americans have a criminal record. Employment cuts recidivism by 50%."},
		{Title: "Paid family leave federal mandate", Question: "Should the US mandate paid family leave at the federal level?", Hook: "The US is the only OECD country without federal paid parental leave."},
		{Title: "Credential inflation in hiring", Question: "Are degree requirements screening out qualified candidates?", Hook: "60% of job postings require a degree, but only 40% of workers have one."},
		{Title: "Workplace surveillance boundaries", Question: "Where should the line be drawn on employee monitoring technology?", Hook: "78% of employers now use some form of digital employee monitoring."},
		{Title: "Union modernization for the gig economy", Question: "How can labor organizing adapt to platform and gig work structures?", Hook: "Union membership is at 10%. Gig workers have no collective bargaining path."},
		{Title: "Youth employment summer programs", Question: "Do summer youth employment programs reduce violence and improve outcomes?", Hook: "Chicago's One Summer Plus reduced violence arrests by 43%."},
		{Title: "Salary transparency legislation", Question: "Does requiring salary ranges in job postings reduce pay gaps?", Hook: "Colorado's salary transparency law showed 5% narrowing in gender pay gaps."},
		{Title: "Skills-based hiring government adoption", Question: "Should government agencies lead the shift to skills-based hiring?", Hook: "Federal agencies still require degrees for 60% of roles."},
		{Title: "Worker cooperative tax incentives", Question: "Should worker-owned cooperatives receive tax benefits similar to ESOPs?", Hook: "Worker co-ops have 30% lower failure rates than traditional businesses."},
		{Title: "Freelancer retirement security", Question: "How can independent workers build retirement security without employer matching?", Hook: "40% of freelancers have zero retirement savings."},
		{Title: "Green jobs transition planning", Question: "How should fossil fuel communities plan workforce transitions to green energy?", Hook: "Coal employment dropped 50% in a decade. New energy jobs don't always go to the same workers."},
		{Title: "Childcare as workforce infrastructure", Question: "Should childcare be treated as essential infrastructure for workforce participation?", Hook: "2 million parents left the workforce due to childcare gaps."},
		{Title: "Automation tax proposals", Question: "Should companies pay a tax on automated jobs to fund retraining?", Hook: "Bill Gates proposed a robot tax. Economists remain divided."},
	},
	entity.BucketHousing: {
		{Title: "Rent control expansion effectiveness", Question: "Does expanding rent control reduce displacement without reducing supply?", Hook: "Stanford study: rent control saved tenants 5% but reduced supply by 15%."},
		{Title: "Zoning reform for missing middle housing", Question: "Should cities eliminate single-family zoning to allow duplexes and triplexes?", Hook: "Minneapolis eliminated single-family zoning. New permits tripled."},
		{Title: "Community land trust scaling", Question: "Can community land trusts be scaled to address the affordable housing crisis?", Hook: "CLTs keep homes affordable permanently, but only serve 300,000 households nationally."},
		{Title: "Housing first for chronic homelessness", Question: "Is Housing First the most cost-effective approach to chronic homelessness?", Hook: "Housing First programs reduce ER visits by 60% and cut public costs."},
		{Title: "Inclusionary zoning effectiveness", Question: "Do inclusionary zoning mandates produce enough affordable units?", Hook: "IZ policies produce only 1-3% of new units as affordable in most cities."},
		{Title: "Accessory dwelling unit policy", Question: "Should cities streamline ADU permitting to increase housing supply?", Hook: "LA permitted 20,000 ADUs after reforms. Most cities still restrict them."},
		{Title: "Public housing reinvestment", Question: "Should the US reinvest in public housing construction?", Hook: "The US hasn't built significant public housing since the 1970s. Waitlists average 2+ years."},
		{Title: "Eviction prevention programs", Question: "Which eviction prevention models show the strongest outcomes?", Hook: "Eviction filings affect 3.6 million households annually."},
		{Title: "Corporate landlord regulation", Question: "Should institutional investors be restricted from buying single-family homes?", Hook: "Institutional investors own 3% of single-family rentals but 25% in some zip codes."},
		{Title: "Modular and prefab housing for affordability", Question: "Can modular construction meaningfully reduce housing costs?", Hook: "Modular homes cost 10-20% less but face zoning and financing barriers."},
		{Title: "NIMBY vs YIMBY: community input reform", Question: "Should community review processes be streamlined to speed housing production?", Hook: "Environmental review adds 2-3 years to housing projects in California."},
		{Title: "Tiny home villages for transitional housing", Question: "Are tiny home communities an effective bridge to permanent housing?", Hook: "Portland's tiny home villages house 300+ people at a fraction of shelter costs."},
		{Title: "Section 8 voucher reform", Question: "How should Housing Choice Vouchers be reformed to improve outcomes?", Hook: "Only 1 in 4 eligible households receives a voucher due to funding limits."},
		{Title: "Property tax reform for affordability", Question: "Can property tax reform prevent displacement in gentrifying neighborhoods?", Hook: "Detroit's over-assessment displaced thousands of Black homeowners."},
		{Title: "Mixed-income development requirements", Question: "Do mixed-income developments create better outcomes than concentrated affordable housing?", Hook: "Moving to Opportunity study showed lasting health and earnings gains."},
		{Title: "Co-living and shared housing policy", Question: "Should cities update occupancy limits to allow co-living models?", Hook: "Co-living reduces per-person housing costs by 20-30% in high-cost cities."},
		{Title: "Tenant right to counsel in eviction", Question: "Should tenants have a right to legal representation in eviction proceedings?", Hook: "NYC's right to counsel reduced evictions by 30% in covered zip codes."},
		{Title: "Impact fees on new development", Question: "Do impact fees fund infrastructure or just raise housing prices?", Hook: "Average impact fees exceed $20,000 per unit in some jurisdictions."},
		{Title: "Vacant property tax and land banking", Question: "Should vacant properties face penalty taxes to incentivize use?", Hook: "17 million housing units sit vacant while 600,000 people are homeless."},
		{Title: "Climate-resilient affordable housing", Question: "How should affordable housing be built to withstand climate impacts?", Hook: "FEMA buyouts displace low-income residents without relocation support."},
	},
	entity.BucketHealth: {
		{Title: "Opioid crisis response strategies", Question: "What combination of interventions most effectively reduces opioid deaths?", Hook: "Opioid overdoses killed 80,000 Americans last year. Treatment capacity lags."},
		{Title: "Emergency room triage reform", Question: "Can AI-assisted triage reduce ER wait times without compromising safety?", Hook: "Average ER wait is 2.5 hours. AI triage pilots cut it to 45 minutes."},
		{Title: "Medicaid expansion in holdout states", Question: "What outcomes justify Medicaid expansion in the 10 remaining holdout states?", Hook: "Expansion states saw 6% lower mortality in low-income populations."},
		{Title: "Community health worker programs", Question: "Should community health workers be integrated into primary care teams?", Hook: "CHW programs show $5 return for every $1 invested in preventive care."},
		{Title: "Drug pricing transparency requirements", Question: "Would drug pricing transparency actually lower costs for patients?", Hook: "Insulin costs $10 to make but retails for $300 in the US."},
		{Title: "Maternal mortality reduction strategies", Question: "What interventions most reduce maternal mortality for Black women?", Hook: "Black women die from pregnancy complications at 3x the rate of white women."},
		{Title: "Telehealth permanence post-pandemic", Question: "Should pandemic telehealth flexibilities become permanent?", Hook: "Telehealth visits dropped 70% when temporary waivers expired."},
		{Title: "Mental health parity enforcement", Question: "Is the Mental Health Parity Act being adequately enforced?", Hook: "Insurers deny mental health claims at 2x the rate of medical claims."},
		{Title: "School-based health centers", Question: "Should every Title I school have an on-site health center?", Hook: "School-based health centers reduce absenteeism by 30%."},
		{Title: "Social determinants of health screening", Question: "Should clinicians screen for social determinants during primary care visits?", Hook: "80% of health outcomes are determined by non-clinical factors."},
		{Title: "Public health infrastructure modernization", Question: "How should public health data systems be modernized after COVID?", Hook: "Many health departments still use fax machines for disease reporting."},
		{Title: "Harm reduction program expansion", Question: "Should harm reduction programs including safe consumption sites be expanded?", Hook: "Supervised consumption sites in Canada prevented 10,000+ overdoses."},
		{Title: "Rural hospital closure prevention", Question: "What policy interventions can prevent rural hospital closures?", Hook: "140 rural hospitals have closed since 2010. 600+ are at risk."},
		{Title: "Healthcare workforce shortage solutions", Question: "How can the US address projected shortages of 120,000 physicians by 2030?", Hook: "Medical school capacity hasn't grown proportionally to population."},
		{Title: "Lead exposure elimination in housing", Question: "What is the most cost-effective strategy to eliminate childhood lead exposure?", Hook: "Lead exposure costs the US economy $80 billion annually in lost productivity."},
		{Title: "Behavioral health integration models", Question: "Which behavioral health integration model works best in primary care settings?", Hook: "Collaborative care model reduces depression by 50% vs usual care."},
		{Title: "Food as medicine programs", Question: "Should health insurers cover medically tailored meal programs?", Hook: "Produce prescription programs reduce HbA1c by 0.8 points in diabetic patients."},
		{Title: "Vaccine equity distribution", Question: "How should vaccine distribution be structured to ensure equity?", Hook: "COVID vaccine coverage lagged 15 percentage points in lowest-income zip codes."},
		{Title: "Air quality health impact regulation", Question: "Should EPA air quality standards be tightened based on recent health evidence?", Hook: "Air pollution causes 200,000 excess deaths annually in the US."},
		{Title: "Dental care Medicaid coverage for adults", Question: "Should comprehensive dental care be covered under Medicaid for all adults?", Hook: "Only 13 states offer comprehensive adult dental coverage under Medicaid."},
	},
}
