package seeddata

import "signal-for-good-be/internal/entity"

// SeedSource is one research reference in a bucket's source pack.
type SeedSource struct {
	Title      string
	Publisher  string
	URL        string
	SourceType string
}

// SourcesByBucket holds the curated research library, 30 sources per bucket.
var SourcesByBucket = map[entity.BucketSlug][]SeedSource{
	entity.BucketEducation: {
		{Title: "The Condition of Education 2025", Publisher: "National Center for Education Statistics", URL: "https://nces.ed.gov/programs/coe/", SourceType: "government"},
		{Title: "Effective Teaching Strategies Meta-Analysis", Publisher: "Stanford University CREDO", URL: "https://credo.stanford.edu/", SourceType: "university"},
		{Title: "School Finance Equity Report", Publisher: "Education Trust", URL: "https://edtrust.org/", SourceType: "nonprofit"},
		{Title: "Teacher Workforce Study 2025", Publisher: "RAND Corporation", URL: "https://www.rand.org/education-and-labor.html", SourceType: "research"},
		{Title: "Early Childhood Longitudinal Study", Publisher: "Department of Education", URL: "https://nces.ed.gov/ecls/", SourceType: "government"},
		{Title: "Digital Learning Effectiveness Review", Publisher: "Brookings Institution", URL: "https://www.brookings.edu/topic/education/", SourceType: "nonprofit"},
		{Title: "High School Completion and Outcomes", Publisher: "Georgetown CEW", URL: "https://cew.georgetown.edu/", SourceType: "university"},
		{Title: "Evidence-Based Literacy Interventions", Publisher: "What Works Clearinghouse", URL: "https://ies.ed.gov/ncee/wwc/", SourceType: "government"},
		{Title: "Charter School Performance Study", Publisher: "University of Arkansas", URL: "https://scdp.uark.edu/", SourceType: "university"},
		{Title: "College Completion Rates Analysis", Publisher: "National Student Clearinghouse", URL: "https://nscresearchcenter.org/", SourceType: "research"},
		{Title: "School Safety and Climate Survey", Publisher: "CDC Youth Risk Behavior Survey", URL: "https://www.cdc.gov/yrbs/", SourceType: "government"},
		{Title: "Bilingual Education Outcomes Meta-Analysis", Publisher: "American Educational Research Journal", URL: "https://journals.sagepub.com/home/aer", SourceType: "journal"},
		{Title: "Teacher Compensation International Comparison", Publisher: "OECD Education at a Glance", URL: "https://www.oecd.org/education/education-at-a-glance/", SourceType: "government"},
		{Title: "CTE Program Effectiveness Study", Publisher: "National Research Center for CTE", URL: "https://www.nrccte.org/", SourceType: "research"},
		{Title: "Student Mental Health Trends Report", Publisher: "American Psychological Association", URL: "https://www.apa.org/", SourceType: "research"},
		{Title: "School Funding Formula Analysis", Publisher: "Education Law Center", URL: "https://edlawcenter.org/", SourceType: "nonprofit"},
		{Title: "Remote Learning Infrastructure Assessment", Publisher: "FCC Broadband Report", URL: "https://www.fcc.gov/broadband-data", SourceType: "government"},
		{Title: "Pre-K Quality Standards Review", Publisher: "NIEER State of Preschool", URL: "https://nieer.org/", SourceType: "research"},
		{Title: "Dual Enrollment Impact Study", Publisher: "Community College Research Center", URL: "https://ccrc.tc.columbia.edu/", SourceType: "university"},
		{Title: "Accreditation System Review", Publisher: "Government Accountability Office", URL: "https://www.gao.gov/education", SourceType: "government"},
		{Title: "School Discipline Policy Analysis", Publisher: "Civil Rights Project UCLA", URL: "https://civilrightsproject.ucla.edu/", SourceType: "university"},
		{Title: "STEM Teacher Pipeline Report", Publisher: "National Science Foundation", URL: "https://www.nsf.gov/statistics/", SourceType: "government"},
		{Title: "Summer Learning Loss Prevention", Publisher: "RAND Corporation", URL: "https://www.rand.org/", SourceType: "research"},
		{Title: "Higher Education Finance Trends", Publisher: "State Higher Education Executive Officers", URL: "https://sheeo.org/", SourceType: "nonprofit"},
		{Title: "Assessment Reform Pilot Results", Publisher: "Center for Assessment", URL: "https://www.nciea.org/", SourceType: "research"},
		{Title: "School Meals Program Impact Study", Publisher: "USDA Food and Nutrition Service", URL: "https://www.fns.usda.gov/", SourceType: "government"},
		{Title: "Technology in Classrooms Review", Publisher: "International Society for Technology in Education", URL: "https://www.iste.org/", SourceType: "nonprofit"},
		{Title: "Student Debt and Completion Analysis", Publisher: "Federal Reserve Bank of New York", URL: "https://www.newyorkfed.org/", SourceType: "government"},
		{Title: "Early Intervention Outcomes Research", Publisher: "Heckman Equation Project", URL: "https://heckmanequation.org/", SourceType: "university"},
		{Title: "Inclusive Education Practices Review", Publisher: "National Center on Inclusive Education", URL: "https://education.unh.edu/inclusive", SourceType: "university"},
	},
	entity.BucketJobs: {
		{Title: "Future of Work Report 2025", Publisher: "McKinsey Global Institute", URL: "https://www.mckinsey.com/mgi/", SourceType: "research"},
		{Title: "Gig Economy Labor Statistics", Publisher: "Bureau of Labor Statistics", URL: "https://www.bls.gov/", SourceType: "government"},
		{Title: "Automation and Employment Projections", Publisher: "Brookings Institution", URL: "https://www.brookings.edu/topic/workforce/", SourceType: "nonprofit"},
		{Title: "Minimum Wage Impact Study", Publisher: "Congressional Budget Office", URL: "https://www.cbo.gov/", SourceType: "government"},
		{Title: "Worker Classification Legal Analysis", Publisher: "Economic Policy Institute", URL: "https://www.epi.org/", SourceType: "nonprofit"},
		{Title: "Apprenticeship Outcomes Database", Publisher: "Department of Labor", URL: "https://www.apprenticeship.gov/", SourceType: "government"},
		{Title: "Remote Work Productivity Study", Publisher: "Stanford Institute for Economic Policy Research", URL: "https://siepr.stanford.edu/", SourceType: "university"},
		{Title: "Fair Chance Hiring Outcomes", Publisher: "RAND Corporation", URL: "https://www.rand.org/labor.html", SourceType: "research"},
		{Title: "Paid Leave Cost-Benefit Analysis", Publisher: "National Partnership for Women & Families", URL: "https://www.nationalpartnership.org/", SourceType: "nonprofit"},
		{Title: "Skills-Based Hiring Research", Publisher: "Harvard Business School", URL: "https://www.hbs.edu/managing-the-future-of-work/", SourceType: "university"},
		{Title: "Employee Monitoring Survey", Publisher: "American Management Association", URL: "https://www.amanet.org/", SourceType: "research"},
		{Title: "Union Membership Trends", Publisher: "Bureau of Labor Statistics", URL: "https://www.bls.gov/news.release/union2.toc.htm", SourceType: "government"},
		{Title: "Youth Employment Program Evaluation", Publisher: "University of Chicago Crime Lab", URL: "https://urbanlabs.uchicago.edu/", SourceType: "university"},
		{Title: "Pay Transparency Impact Analysis", Publisher: "National Bureau of Economic Research", URL: "https://www.nber.org/", SourceType: "research"},
		{Title: "Green Jobs Transition Planning Guide", Publisher: "International Labour Organization", URL: "https://www.ilo.org/", SourceType: "government"},
		{Title: "Worker Cooperative Performance Data", Publisher: "Democracy at Work Institute", URL: "https://institute.coop/", SourceType: "nonprofit"},
		{Title: "Freelancer Financial Security Survey", Publisher: "Freelancers Union", URL: "https://www.freelancersunion.org/", SourceType: "nonprofit"},
		{Title: "Childcare and Workforce Participation", Publisher: "Center for American Progress", URL: "https://www.americanprogress.org/", SourceType: "nonprofit"},
		{Title: "Automation Tax Economic Modeling", Publisher: "MIT Technology Review", URL: "https://www.technologyreview.com/", SourceType: "research"},
		{Title: "Salary Transparency Legislation Review", Publisher: "National Conference of State Legislatures", URL: "https://www.ncsl.org/", SourceType: "government"},
		{Title: "Portable Benefits Feasibility Study", Publisher: "Aspen Institute Future of Work Initiative", URL: "https://www.aspeninstitute.org/", SourceType: "nonprofit"},
		{Title: "Four-Day Work Week Trial Results", Publisher: "Autonomy Research", URL: "https://autonomy.work/", SourceType: "research"},
		{Title: "Credential Inflation Analysis", Publisher: "Georgetown Center on Education and the Workforce", URL: "https://cew.georgetown.edu/", SourceType: "university"},
		{Title: "Workforce Retraining Effectiveness", Publisher: "W.E. Upjohn Institute", URL: "https://www.upjohn.org/", SourceType: "research"},
		{Title: "Platform Economy Labor Report", Publisher: "International Labour Organization", URL: "https://www.ilo.org/", SourceType: "government"},
		{Title: "Occupational Outlook Handbook 2025", Publisher: "Bureau of Labor Statistics", URL: "https://www.bls.gov/ooh/", SourceType: "government"},
		{Title: "Income Inequality Trends", Publisher: "Federal Reserve Board", URL: "https://www.federalreserve.gov/", SourceType: "government"},
		{Title: "Small Business Employment Data", Publisher: "Small Business Administration", URL: "https://www.sba.gov/", SourceType: "government"},
		{Title: "Retirement Security for Non-Traditional Workers", Publisher: "AARP Public Policy Institute", URL: "https://www.aarp.org/ppi/", SourceType: "nonprofit"},
		{Title: "Disability Employment Gap Analysis", Publisher: "National Disability Institute", URL: "https://www.nationaldisabilityinstitute.org/", SourceType: "nonprofit"},
	},
	entity.BucketHousing: {
		{Title: "State of the Nation's Housing 2025", Publisher: "Harvard Joint Center for Housing Studies", URL: "https://www.jchs.harvard.edu/", SourceType: "university"},
		{Title: "Rent Control Impact Study", Publisher: "Stanford Institute for Economic Policy Research", URL: "https://siepr.stanford.edu/", SourceType: "university"},
		{Title: "Zoning Reform Outcomes Analysis", Publisher: "Brookings Institution", URL: "https://www.brookings.edu/topic/housing/", SourceType: "nonprofit"},
		{Title: "Housing First Cost-Effectiveness", Publisher: "Urban Institute", URL: "https://www.urban.org/", SourceType: "nonprofit"},
		{Title: "Community Land Trust Impact Report", Publisher: "Lincoln Institute of Land Policy", URL: "https://www.lincolninst.edu/", SourceType: "research"},
		{Title: "Inclusionary Zoning Evaluation", Publisher: "National Housing Conference", URL: "https://nhc.org/", SourceType: "nonprofit"},
		{Title: "ADU Policy Implementation Review", Publisher: "AARP Livable Communities", URL: "https://www.aarp.org/livable-communities/", SourceType: "nonprofit"},
		{Title: "Public Housing Capital Needs Assessment", Publisher: "HUD Office of Policy Development", URL: "https://www.hud.gov/", SourceType: "government"},
		{Title: "Eviction Filing Trends Database", Publisher: "Eviction Lab Princeton", URL: "https://evictionlab.org/", SourceType: "university"},
		{Title: "Institutional Investment in Housing", Publisher: "Federal Reserve Bank of Atlanta", URL: "https://www.atlantafed.org/", SourceType: "government"},
		{Title: "Modular Construction Cost Analysis", Publisher: "National Association of Home Builders", URL: "https://www.nahb.org/", SourceType: "research"},
		{Title: "Environmental Review and Housing Delays", Publisher: "Terner Center UC Berkeley", URL: "https://ternercenter.berkeley.edu/", SourceType: "university"},
		{Title: "Section 8 Voucher Utilization Study", Publisher: "Center on Budget and Policy Priorities", URL: "https://www.cbpp.org/", SourceType: "nonprofit"},
		{Title: "Property Tax Assessment Equity", Publisher: "University of Chicago Harris School", URL: "https://harris.uchicago.edu/", SourceType: "university"},
		{Title: "Moving to Opportunity Long-Term Results", Publisher: "Harvard Opportunity Insights", URL: "https://opportunityinsights.org/", SourceType: "university"},
		{Title: "Homelessness Point-in-Time Count", Publisher: "HUD Annual Homeless Assessment Report", URL: "https://www.huduser.gov/", SourceType: "government"},
		{Title: "Right to Counsel Evaluation", Publisher: "National Coalition for a Civil Right to Counsel", URL: "https://www.civilrighttocounsel.org/", SourceType: "nonprofit"},
		{Title: "Impact Fee Analysis", Publisher: "National Association of Home Builders", URL: "https://www.nahb.org/", SourceType: "research"},
		{Title: "Vacant Property Tax Policy Review", Publisher: "Lincoln Institute of Land Policy", URL: "https://www.lincolninst.edu/", SourceType: "research"},
		{Title: "Climate Adaptation for Housing", Publisher: "Federal Emergency Management Agency", URL: "https://www.fema.gov/", SourceType: "government"},
		{Title: "Tiny Home Ordinance Review", Publisher: "National League of Cities", URL: "https://www.nlc.org/", SourceType: "nonprofit"},
		{Title: "Housing Supply Elasticity Study", Publisher: "National Bureau of Economic Research", URL: "https://www.nber.org/", SourceType: "research"},
		{Title: "Tenant Protection Policy Index", Publisher: "Urban Institute", URL: "https://www.urban.org/", SourceType: "nonprofit"},
		{Title: "Affordable Housing Development Costs", Publisher: "Government Accountability Office", URL: "https://www.gao.gov/", SourceType: "government"},
		{Title: "Housing and Health Outcomes Study", Publisher: "Robert Wood Johnson Foundation", URL: "https://www.rwjf.org/", SourceType: "nonprofit"},
		{Title: "Lead Paint Remediation Costs", Publisher: "HUD Healthy Homes Program", URL: "https://www.hud.gov/program_offices/healthy_homes", SourceType: "government"},
		{Title: "Co-Living Market Analysis", Publisher: "Urban Land Institute", URL: "https://uli.org/", SourceType: "research"},
		{Title: "LIHTC Program Evaluation", Publisher: "National Council of State Housing Agencies", URL: "https://www.ncsha.org/", SourceType: "nonprofit"},
		{Title: "Housing Discrimination Testing Report", Publisher: "National Fair Housing Alliance", URL: "https://nationalfairhousing.org/", SourceType: "nonprofit"},
		{Title: "Construction Workforce Shortage Data", Publisher: "Associated General Contractors", URL: "https://www.agc.org/", SourceType: "research"},
	},
	entity.BucketHealth: {
		{Title: "National Health Expenditure Projections", Publisher: "Centers for Medicare & Medicaid Services", URL: "https://www.cms.gov/", SourceType: "government"},
		{Title: "Opioid Overdose Death Statistics", Publisher: "CDC National Center for Health Statistics", URL: "https://www.cdc.gov/nchs/", SourceType: "government"},
		{Title: "Emergency Department Wait Time Analysis", Publisher: "American College of Emergency Physicians", URL: "https://www.acep.org/", SourceType: "research"},
		{Title: "Medicaid Expansion Outcomes Review", Publisher: "Kaiser Family Foundation", URL: "https://www.kff.org/", SourceType: "nonprofit"},
		{Title: "Community Health Worker Evidence Review", Publisher: "American Public Health Association", URL: "https://www.apha.org/", SourceType: "research"},
		{Title: "Drug Pricing International Comparison", Publisher: "RAND Corporation", URL: "https://www.rand.org/health-care.html", SourceType: "research"},
		{Title: "Maternal Mortality Disparities Report", Publisher: "Commonwealth Fund", URL: "https://www.commonwealthfund.org/", SourceType: "nonprofit"},
		{Title: "Telehealth Utilization Post-Pandemic", Publisher: "Health Affairs", URL: "https://www.healthaffairs.org/", SourceType: "journal"},
		{Title: "Mental Health Parity Compliance Report", Publisher: "Department of Labor", URL: "https://www.dol.gov/agencies/ebsa/about-ebsa/our-activities/resource-center/publications/compliance-assistance-guide-mhpaea", SourceType: "government"},
		{Title: "School-Based Health Center Outcomes", Publisher: "School-Based Health Alliance", URL: "https://www.sbh4all.org/", SourceType: "nonprofit"},
		{Title: "Social Determinants Screening Tools", Publisher: "National Academy of Medicine", URL: "https://nam.edu/", SourceType: "research"},
		{Title: "Public Health Infrastructure Assessment", Publisher: "Trust for America's Health", URL: "https://www.tfah.org/", SourceType: "nonprofit"},
		{Title: "Supervised Consumption Site Evidence", Publisher: "The Lancet", URL: "https://www.thelancet.com/", SourceType: "journal"},
		{Title: "Rural Hospital Closure Monitor", Publisher: "Cecil G. Sheps Center UNC", URL: "https://www.shepscenter.unc.edu/", SourceType: "university"},
		{Title: "Physician Workforce Projections", Publisher: "Association of American Medical Colleges", URL: "https://www.aamc.org/", SourceType: "research"},
		{Title: "Lead Exposure Health Costs Analysis", Publisher: "Pediatrics Journal", URL: "https://pediatrics.aappublications.org/", SourceType: "journal"},
		{Title: "Collaborative Care Model Meta-Analysis", Publisher: "Archives of General Psychiatry", URL: "https://jamanetwork.com/journals/jamapsychiatry", SourceType: "journal"},
		{Title: "Food is Medicine Evidence Review", Publisher: "Center for Health Law and Policy Innovation", URL: "https://chlpi.org/", SourceType: "university"},
		{Title: "Vaccine Equity Distribution Analysis", Publisher: "Johns Hopkins Bloomberg School", URL: "https://publichealth.jhu.edu/", SourceType: "university"},
		{Title: "Air Quality and Mortality Study", Publisher: "Environmental Protection Agency", URL: "https://www.epa.gov/", SourceType: "government"},
		{Title: "Adult Dental Coverage Impact Study", Publisher: "Health Policy Institute ADA", URL: "https://www.ada.org/resources/research/health-policy-institute", SourceType: "research"},
		{Title: "Chronic Disease Prevention ROI", Publisher: "CDC Division of Chronic Disease Prevention", URL: "https://www.cdc.gov/chronic-disease/", SourceType: "government"},
		{Title: "Behavioral Health Integration Models", Publisher: "Milbank Memorial Fund", URL: "https://www.milbank.org/", SourceType: "nonprofit"},
		{Title: "Health Insurance Coverage Trends", Publisher: "Census Bureau Current Population Survey", URL: "https://www.census.gov/programs-surveys/cps.html", SourceType: "government"},
		{Title: "Hospital Readmission Reduction Analysis", Publisher: "Agency for Healthcare Research and Quality", URL: "https://www.ahrq.gov/", SourceType: "government"},
		{Title: "Substance Use Treatment Capacity Study", Publisher: "SAMHSA National Survey", URL: "https://www.samhsa.gov/", SourceType: "government"},
		{Title: "Primary Care Access Disparities", Publisher: "Robert Wood Johnson Foundation", URL: "https://www.rwjf.org/", SourceType: "nonprofit"},
		{Title: "Precision Medicine Equity Concerns", Publisher: "National Institutes of Health", URL: "https://www.nih.gov/", SourceType: "government"},
		{Title: "Nursing Workforce Supply Analysis", Publisher: "National Council of State Boards of Nursing", URL: "https://www.ncsbn.org/", SourceType: "research"},
		{Title: "Climate Change and Health Impacts", Publisher: "World Health Organization", URL: "https://www.who.int/", SourceType: "government"},
	},
}
