package catalog

import "github.com/bws82/biasclear/internal/model"

// DefaultPatterns returns the built-in structural bias pattern set.
// Severities and base confidences are calibration parameters; override them
// with a pattern file rather than editing here.
func DefaultPatterns() []model.Pattern {
	return []model.Pattern{
		// Tier 1: ideological. Framing and consensus patterns.
		{
			ID:         "false-consensus",
			Name:       "False Consensus Claim",
			Tier:       model.TierIdeological,
			Kind:       model.KindRegexp,
			Regex:      `\b(everyone (agrees|knows)|we all know|nobody disputes|no one (denies|disagrees)|it is widely accepted)\b`,
			Severity:   6.0,
			Confidence: 0.90,
		},
		{
			ID:         "uncited-expertise",
			Name:       "Uncited Expert Consensus",
			Tier:       model.TierIdeological,
			Kind:       model.KindRegexp,
			Regex:      `\b(studies show|research proves|experts agree|scientists (say|agree))\b`,
			Severity:   7.0,
			Confidence: 0.85,
		},
		{
			ID:         "absolute-generalization",
			Name:       "Absolute Generalization",
			Tier:       model.TierIdeological,
			Kind:       model.KindRegexp,
			Regex:      `\b(all|every|no)\s+(reasonable|honest|sane|thinking)\s+(people|person|reader|observer)s?\b`,
			Severity:   6.0,
			Confidence: 0.85,
		},
		{
			ID:   "hedge-collapse",
			Name: "Hedged Claim Collapsed Into Certainty",
			Tier: model.TierIdeological,
			Kind: model.KindProximity,
			Proximity: &model.ProximityRule{
				Anchors:    []string{"might", "may", "could", "possibly", "suggests", "appears"},
				Companions: []string{"proves", "proven", "certainly", "definitely", "undeniable", "beyond doubt"},
				Window:     12,
			},
			Severity:   5.0,
			Confidence: 0.70,
		},
		{
			ID:         "us-vs-them",
			Name:       "Us-Versus-Them Framing",
			Tier:       model.TierIdeological,
			Kind:       model.KindRegexp,
			Regex:      `\b(they|the (elites|establishment|mainstream))\s+(don'?t want you|want you|are hiding|won'?t tell you)\b`,
			Severity:   7.0,
			Confidence: 0.85,
		},
		{
			ID:         "thought-terminator",
			Name:       "Thought-Terminating Cliche",
			Tier:       model.TierIdeological,
			Kind:       model.KindRegexp,
			Regex:      `\b(it is what it is|case closed|end of story|that'?s just how it is|period, full stop)\b`,
			Severity:   4.0,
			Confidence: 0.80,
		},
		{
			ID:         "dismissive-label",
			Name:       "Dismissive Labeling",
			Tier:       model.TierIdeological,
			Kind:       model.KindRegexp,
			Regex:      `\b(so-called|self-proclaimed|self-styled)\s+["']?\w+`,
			Severity:   4.0,
			Confidence: 0.75,
		},
		{
			ID:         "false-dichotomy",
			Name:       "False Dichotomy",
			Tier:       model.TierIdeological,
			Kind:       model.KindRegexp,
			Regex:      `\b(you('re| are) either\b|only two (choices|options|paths)|either with us or)`,
			Severity:   5.0,
			Confidence: 0.80,
		},
		{
			ID:         "inevitability-frame",
			Name:       "Inevitability Framing",
			Tier:       model.TierIdeological,
			Kind:       model.KindRegexp,
			Regex:      `\b(history will (judge|vindicate)|the tide of history|it is inevitable that)\b`,
			Severity:   4.0,
			Confidence: 0.75,
		},
		{
			ID:         "motive-attribution",
			Name:       "Imputed Motive",
			Tier:       model.TierIdeological,
			Kind:       model.KindRegexp,
			Regex:      `\b(they only (want|care about)|their (real|true|hidden) (goal|agenda|motive))\b`,
			Severity:   5.0,
			Confidence: 0.80,
		},
		{
			ID:         "common-sense-appeal",
			Name:       "Appeal to Common Sense",
			Tier:       model.TierIdeological,
			Kind:       model.KindRegexp,
			Regex:      `\b(common sense (tells|says|dictates)|it goes without saying|any fool can see)\b`,
			Severity:   3.0,
			Confidence: 0.75,
		},
		{
			ID:         "majority-pressure",
			Name:       "Majority Pressure",
			Tier:       model.TierIdeological,
			Kind:       model.KindRegexp,
			Regex:      `\b(most people (agree|know|understand)|the (vast|overwhelming) majority)\b`,
			Severity:   5.0,
			Confidence: 0.80,
		},
		{
			ID:         "purity-test",
			Name:       "Purity Test",
			Tier:       model.TierIdeological,
			Kind:       model.KindRegexp,
			Regex:      `\b(no true \w+|any (real|genuine) \w+ (would|knows))\b`,
			Severity:   4.0,
			Confidence: 0.70,
		},
		{
			ID:         "settled-debate",
			Name:       "Debate Declared Settled",
			Tier:       model.TierIdeological,
			Kind:       model.KindRegexp,
			Regex:      `\b(the (debate|science|question) is (over|settled)|beyond (debate|dispute|question))\b`,
			Severity:   6.0,
			Confidence: 0.85,
		},

		// Tier 2: psychological. Anchoring and emotional appeal.
		{
			ID:   "loaded-intensifiers",
			Name: "Loaded Intensifier Density",
			Tier: model.TierPsychological,
			Kind: model.KindDensity,
			Density: &model.DensityRule{
				Terms: []string{
					"shocking", "outrageous", "devastating", "horrifying",
					"disgraceful", "unbelievable", "stunning", "explosive", "bombshell",
				},
				PerThousand: 3.0,
			},
			Severity:   6.0,
			Confidence: 0.75,
		},
		{
			ID:         "fear-appeal",
			Name:       "Fear Appeal",
			Tier:       model.TierPsychological,
			Kind:       model.KindRegexp,
			Regex:      `\b(catastrophe|disaster|collapse|ruin)\s+(awaits|looms|is (coming|inevitable|certain))\b`,
			Severity:   7.0,
			Confidence: 0.80,
		},
		{
			ID:         "urgency-pressure",
			Name:       "Manufactured Urgency",
			Tier:       model.TierPsychological,
			Kind:       model.KindRegexp,
			Regex:      `\b(act now|before it'?s too late|time is running out|this is your last chance)\b`,
			Severity:   5.0,
			Confidence: 0.85,
		},
		{
			ID:         "anchoring-figures",
			Name:       "Anchoring With Unbounded Figures",
			Tier:       model.TierPsychological,
			Kind:       model.KindRegexp,
			Regex:      `\b(up to \d+\s?%|as (much|many) as \d+|a staggering \d+)`,
			Severity:   4.0,
			Confidence: 0.60,
		},
		{
			ID:   "personalized-threat",
			Name: "Personalized Threat Imagery",
			Tier: model.TierPsychological,
			Kind: model.KindProximity,
			Proximity: &model.ProximityRule{
				Anchors:    []string{"imagine", "picture", "think about"},
				Companions: []string{"your family", "your children", "your home", "your savings", "your future"},
				Window:     10,
			},
			Severity:   5.0,
			Confidence: 0.70,
		},
		{
			ID:         "outrage-bait",
			Name:       "Outrage Bait",
			Tier:       model.TierPsychological,
			Kind:       model.KindRegexp,
			Regex:      `\b(you won'?t believe|what happened next|will (shock|stun) you|the truth they)\b`,
			Severity:   6.0,
			Confidence: 0.85,
		},
		{
			ID:         "flattery-priming",
			Name:       "Flattery Priming",
			Tier:       model.TierPsychological,
			Kind:       model.KindRegexp,
			Regex:      `\b(smart (people|readers) like you|you deserve (better|the truth)|discerning readers)\b`,
			Severity:   3.0,
			Confidence: 0.75,
		},
		{
			ID:         "scarcity-frame",
			Name:       "Scarcity Framing",
			Tier:       model.TierPsychological,
			Kind:       model.KindRegexp,
			Regex:      `\b(only a (few|handful)|limited time|exclusive access|supplies are running out)\b`,
			Severity:   4.0,
			Confidence: 0.75,
		},
		{
			ID:   "repetition-drumbeat",
			Name: "Repetition Drumbeat",
			Tier: model.TierPsychological,
			Kind: model.KindDensity,
			Density: &model.DensityRule{
				Terms:       []string{"again and again", "over and over", "time and time again"},
				PerThousand: 1.5,
			},
			Severity:   3.0,
			Confidence: 0.65,
		},
		{
			ID:         "war-metaphor",
			Name:       "Conflict Metaphor Framing",
			Tier:       model.TierPsychological,
			Kind:       model.KindRegexp,
			Regex:      `\b(war on|attack on|assault on|siege of)\s+(our|the|your)\s+\w+`,
			Severity:   5.0,
			Confidence: 0.75,
		},
		{
			ID:         "sentimental-absolutes",
			Name:       "Sentimental Absolutes",
			Tier:       model.TierPsychological,
			Kind:       model.KindRegexp,
			Regex:      `\b(everything we hold dear|all that we cherish|the very soul of)\b`,
			Severity:   4.0,
			Confidence: 0.80,
		},
		{
			ID:         "leading-question",
			Name:       "Leading Rhetorical Question",
			Tier:       model.TierPsychological,
			Kind:       model.KindRegexp,
			Regex:      `\b(what are they hiding|why won'?t (they|anyone) (tell|admit)|coincidence\s*\?)`,
			Severity:   4.0,
			Confidence: 0.75,
		},

		// Tier 3: institutional. Credential and regulatory-capture framing.
		{
			ID:   "title-substitution",
			Name: "Authority Title Substituted for Argument",
			Tier: model.TierInstitutional,
			Kind: model.KindProximity,
			Proximity: &model.ProximityRule{
				Anchors:    []string{"dr.", "professor", "experts", "officials", "authorities"},
				Companions: []string{"says", "said", "confirms", "confirmed", "warns", "warned", "insists"},
				Window:     6,
			},
			Severity:   7.0,
			Confidence: 0.80,
		},
		{
			ID:         "anonymous-authority",
			Name:       "Anonymous Authority",
			Tier:       model.TierInstitutional,
			Kind:       model.KindRegexp,
			Regex:      `\b(sources say|insiders (say|claim)|officials familiar with|people close to the matter)\b`,
			Severity:   7.0,
			Confidence: 0.85,
		},
		{
			ID:         "credential-display",
			Name:       "Credential Display",
			Tier:       model.TierInstitutional,
			Kind:       model.KindRegexp,
			Regex:      `\b(with over \d+ years of experience|award-winning|world-renowned|a leading authority)\b`,
			Severity:   5.0,
			Confidence: 0.75,
		},
		{
			ID:         "regulatory-endorsement",
			Name:       "Vague Regulatory Endorsement",
			Tier:       model.TierInstitutional,
			Kind:       model.KindRegexp,
			Regex:      `\b(approved|endorsed|certified)\s+by\s+(the\s+)?(government|regulators|authorities)\b`,
			Severity:   6.0,
			Confidence: 0.80,
		},
		{
			ID:         "institutional-shield",
			Name:       "Institutional Non-Answer",
			Tier:       model.TierInstitutional,
			Kind:       model.KindRegexp,
			Regex:      `\bthe (agency|department|commission|ministry) declined to comment\b`,
			Severity:   3.0,
			Confidence: 0.70,
		},
		{
			ID:   "legalese-fog",
			Name: "Legalistic Obfuscation Density",
			Tier: model.TierInstitutional,
			Kind: model.KindDensity,
			Density: &model.DensityRule{
				Terms:       []string{"pursuant to", "heretofore", "notwithstanding", "aforementioned", "hereinafter"},
				PerThousand: 2.0,
			},
			Severity:   4.0,
			Confidence: 0.70,
			Domains:    []model.Domain{model.DomainLegal, model.DomainFinancial},
		},
		{
			ID:         "appeal-to-office",
			Name:       "Appeal to Office",
			Tier:       model.TierInstitutional,
			Kind:       model.KindRegexp,
			Regex:      `\bas (president|chairman|chairwoman|director|judge|commissioner),? I\b`,
			Severity:   4.0,
			Confidence: 0.75,
		},
		{
			ID:         "institutional-unanimity",
			Name:       "Claimed Institutional Unanimity",
			Tier:       model.TierInstitutional,
			Kind:       model.KindRegexp,
			Regex:      `\b(all|every) (major|leading) (institution|organization|agency|bank)s?\b`,
			Severity:   6.0,
			Confidence: 0.80,
		},
		{
			ID:         "unnamed-study",
			Name:       "Unnamed Study Citation",
			Tier:       model.TierInstitutional,
			Kind:       model.KindRegexp,
			Regex:      `\ba (new|recent) (study|report|survey) (finds|found|shows|showed|reveals)\b`,
			Severity:   6.0,
			Confidence: 0.80,
		},
		{
			ID:         "revolving-door",
			Name:       "Revolving Door Credentialing",
			Tier:       model.TierInstitutional,
			Kind:       model.KindRegexp,
			Regex:      `\bformer (regulator|official|commissioner)s? (now|turned)\b`,
			Severity:   4.0,
			Confidence: 0.70,
			Domains:    []model.Domain{model.DomainLegal, model.DomainFinancial, model.DomainMedia},
		},
		{
			ID:         "science-badge",
			Name:       "Science as Badge",
			Tier:       model.TierInstitutional,
			Kind:       model.KindRegexp,
			Regex:      `\b(scientifically proven|clinically proven|doctor recommended|laboratory tested)\b`,
			Severity:   6.0,
			Confidence: 0.85,
		},
	}
}
