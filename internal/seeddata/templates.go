package seeddata

import (
	"fmt"
	"math/rand"
	"strings"

	"signal-for-good-be/internal/entity"
)

// roundTemplates maps round number -> lane -> candidate message texts.
// Used by the seeder and as the generator's fallback when no LLM is wired.
var roundTemplates = map[int]map[entity.Lane][]string{
	1: { // Define
		entity.LaneProposal: {
			`The core challenge here is framing this correctly. When we talk about "{topic}", we need to distinguish between the symptoms the public sees and the structural causes policy can address. I propose we define the problem scope as: who is most affected, what current interventions exist, and where the evidence gaps are.`,
			`Let me ground us in the data first. The available research on this topic points to three key dimensions we need to address: access, quality, and sustainability. Each has distinct stakeholders and evidence bases.`,
		},
		entity.LaneSupport: {
			`I want to add a historical perspective here. We've seen similar policy debates before, and the patterns are instructive. The precedents suggest that solutions work best when they account for implementation capacity at the local level.`,
			`Building on that framing, the equity dimension is critical. Any solution we consider must address differential impacts across income levels, geography, and race. The evidence clearly shows disparate outcomes in this area.`,
		},
		entity.LaneCounter: {
			`I appreciate the framing, but I think we're missing the cost dimension. Before we go further, we need to establish what resources are realistically available and what the opportunity costs are. This helps us avoid proposing solutions that can't be funded.`,
			`I'd push back slightly on the scope. We risk trying to solve everything at once. The evidence for narrower, targeted interventions is often stronger than comprehensive approaches. Can we identify the highest-leverage point?`,
		},
	},
	2: { // Propose
		entity.LaneProposal: {
			`Based on our problem definition, I propose a three-tier approach: immediate relief measures that can launch within 90 days, medium-term structural changes requiring legislation, and long-term systems redesign. For the immediate tier, the evidence supports direct funding to existing community organizations.`,
			`My primary recommendation is a pilot program approach. Select 3-5 diverse jurisdictions, implement the intervention with proper controls, measure for 18 months, then scale what works. The research literature strongly favors this over national rollouts.`,
		},
		entity.LaneSupport: {
			`The pilot approach aligns well with successful precedents. When similar programs were tested at scale, the ones that started with pilots showed significantly better outcomes during national implementation. The key success factor was allowing for local adaptation.`,
			`I support this direction and want to add the implementation blueprint. Based on comparable program rollouts, we need dedicated staff for each pilot site, a standardized data collection framework, and quarterly reviews with authority to course-correct.`,
		},
		entity.LaneCounter: {
			`The pilot model has merit, but 18 months is too long given the urgency. I'd propose an accelerated timeline with 6-month checkpoints and clear go/no-go criteria. We also need to address: what happens to the communities not selected for pilots?`,
			`I want to flag a risk with the phased approach: it can become an excuse for delay. The evidence shows that in similar contexts, communities that received immediate broad intervention actually outperformed those that waited for pilot results.`,
		},
	},
	3: { // Stress test
		entity.LaneProposal: {
			`Let me stress-test our proposal against three failure scenarios: funding cuts after year one, political leadership changes, and community opposition. For each, I've identified mitigation strategies based on how similar programs survived these challenges.`,
			`The fiscal analysis shows this proposal costs between the two relevant benchmarks. Per-person costs are within range of programs that have demonstrated positive ROI within 3 years. The break-even point depends on which outcomes we measure.`,
		},
		entity.LaneSupport: {
			`One underexplored risk is workforce capacity. Even with funding, do we have enough qualified people to implement this? The evidence from similar expansions suggests we need a parallel workforce pipeline or we'll face quality problems.`,
			`I want to validate the cost estimates by comparing to three analogous programs. The data suggests our projections are realistic if we account for regional variation. Implementation costs tend to run 15-20% over initial estimates.`,
		},
		entity.LaneCounter: {
			`There's a systemic risk we haven't discussed: if this succeeds in pilot sites, can the systems handle 50x scale? Most policy failures happen at the scaling stage, not the pilot stage. I'd recommend building scaling capacity from day one.`,
			`The political risk is real and probably underweighted. Similar initiatives have been defunded or redirected after elections. The mitigation should include building bipartisan support structures and embedding the program in existing institutions that survive political transitions.`,
		},
	},
	4: { // Converge
		entity.LaneProposal: {
			`Synthesizing our discussion, I see convergence on these points: the pilot approach with accelerated 6-month checkpoints, parallel workforce development, built-in scaling plans, and political durability through institutional embedding. The remaining disagreement is on timeline intensity.`,
			`The group has effectively narrowed our options from five to two viable paths. Both have evidence support. I recommend Path A because it addresses the urgency concern while maintaining rigor. Path B is the fallback if initial funding targets aren't met.`,
		},
		entity.LaneSupport: {
			`I can support this synthesis. The compromise on timeline addresses my urgency concern while keeping the evidence rigor intact. I'd add one condition: we need a clear public dashboard showing progress metrics so stakeholders can see results in real time.`,
			`The convergence feels right. I want to document that we're choosing deliberate trade-offs: speed over comprehensiveness in the first phase, with a commitment to broadening scope in phase two based on pilot data.`,
		},
		entity.LaneCounter: {
			`I'll support the consensus with one important caveat: we must define failure criteria upfront. If the pilot doesn't hit minimum thresholds by month 6, we need an honest reassessment rather than doubling down. The evidence from other programs shows early failure signals are reliable.`,
			`Agreed on the direction. My final concern is measurement. We need to agree now on which metrics constitute success, and they need to be outcomes not outputs. Counting activities doesn't tell us if lives improved.`,
		},
	},
	5: { // Implementation
		entity.LaneProposal: {
			`Here's the implementation roadmap: Days 1-30: site selection and partner agreements. Days 31-60: staff hiring and training. Days 61-90: soft launch with first cohort. Month 4-6: full operation with data collection. Month 7: first evaluation checkpoint with go/no-go decision.`,
			`For the governance structure, I recommend a steering committee with representation from affected communities, implementing agencies, funders, and independent evaluators. Monthly meetings with published minutes and quarterly public reports.`,
		},
		entity.LaneSupport: {
			`The staffing plan needs one addition: each site needs a dedicated data coordinator from day one. Programs that treated data as an afterthought consistently produced weaker evidence, which undermined scaling arguments later.`,
			`I'll draft the KPIs based on our convergence discussion. Primary outcomes: three measurable improvements within 12 months. Secondary outcomes: five system-level changes within 24 months. All with baseline measurements taken before launch.`,
		},
		entity.LaneCounter: {
			`The timeline is tight but feasible if we pre-identify backup sites. The biggest implementation risk is site-level delays. Having pre-approved alternates means we don't lose months if one site falls through.`,
			`Final implementation note: we need an explicit communications plan. The evidence shows that programs with proactive public communication build more durable political support. Budget at least 5% for communications and community engagement.`,
		},
	},
}

// MessageContent picks a template for the round/lane, filling in the topic
// where the template has a {topic} placeholder.
func MessageContent(rng *rand.Rand, topic string, round int, lane entity.Lane) string {
	laneOptions, ok := roundTemplates[round]
	if !ok {
		return fmt.Sprintf("Discussion continues on this topic regarding %s. The agents are analyzing evidence and building toward a practical recommendation.", topic)
	}
	options := laneOptions[lane]
	if len(options) == 0 {
		return fmt.Sprintf("Discussion continues on this topic regarding %s. The agents are analyzing evidence and building toward a practical recommendation.", topic)
	}
	tmpl := options[rng.Intn(len(options))]
	return strings.ReplaceAll(tmpl, "{topic}", topic)
}

// FallbackCycleContent is the generator's template text for a new round when
// no LLM output is available.
func FallbackCycleContent(round int, topic string) string {
	return fmt.Sprintf("Round %d analysis of %s: The available evidence suggests multiple viable approaches. Stakeholder input and pilot data will strengthen the final recommendation. This assessment reflects current research consensus, not prescriptive guidance.", round, topic)
}

// CostBands are the solution card cost estimates.
var CostBands = []string{"$500K-$2M", "$2M-$10M", "$10M-$50M"}
