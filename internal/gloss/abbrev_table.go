package gloss

// defaultAbbreviations returns the built-in gloss code table, following the
// Leipzig Glossing Rules abbreviation list plus the bare person digits.
// Lookups are case-sensitive.
func defaultAbbreviations() map[string]string {
	return map[string]string{
		"1": "first person",
		"2": "second person",
		"3": "third person",
		"4": "fourth person",

		"A":     "agent-like argument",
		"ABL":   "ablative",
		"ABS":   "absolutive",
		"ACC":   "accusative",
		"ADJ":   "adjective",
		"ADV":   "adverb(ial)",
		"AGR":   "agreement",
		"ALL":   "allative",
		"ANTIP": "antipassive",
		"APPL":  "applicative",
		"ART":   "article",
		"AUX":   "auxiliary",
		"BEN":   "benefactive",
		"CAUS":  "causative",
		"CLF":   "classifier",
		"COM":   "comitative",
		"COMP":  "complementizer",
		"COMPL": "completive",
		"COND":  "conditional",
		"COP":   "copula",
		"CVB":   "converb",
		"DAT":   "dative",
		"DECL":  "declarative",
		"DEF":   "definite",
		"DEM":   "demonstrative",
		"DET":   "determiner",
		"DIST":  "distal",
		"DISTR": "distributive",
		"DU":    "dual",
		"DUR":   "durative",
		"ERG":   "ergative",
		"EXCL":  "exclusive",
		"F":     "feminine",
		"FOC":   "focus",
		"FUT":   "future",
		"GEN":   "genitive",
		"IMP":   "imperative",
		"INCL":  "inclusive",
		"IND":   "indicative",
		"INDF":  "indefinite",
		"INF":   "infinitive",
		"INS":   "instrumental",
		"INTR":  "intransitive",
		"IPFV":  "imperfective",
		"IRR":   "irrealis",
		"LOC":   "locative",
		"M":     "masculine",
		"N":     "neuter",
		"NEG":   "negation, negative",
		"NMLZ":  "nominalizer/nominalization",
		"NOM":   "nominative",
		"OBJ":   "object",
		"OBL":   "oblique",
		"P":     "patient-like argument",
		"PASS":  "passive",
		"PFV":   "perfective",
		"PL":    "plural",
		"POSS":  "possessive",
		"PRED":  "predicative",
		"PRF":   "perfect",
		"PROG":  "progressive",
		"PROH":  "prohibitive",
		"PROX":  "proximal/proximate",
		"PRS":   "present",
		"PST":   "past",
		"PTCP":  "participle",
		"PURP":  "purposive",
		"Q":     "question particle/marker",
		"QUOT":  "quotative",
		"RECP":  "reciprocal",
		"REFL":  "reflexive",
		"REL":   "relative",
		"RES":   "resultative",
		"S":     "single argument",
		"SBJ":   "subject",
		"SBJV":  "subjunctive",
		"SG":    "singular",
		"TOP":   "topic",
		"TR":    "transitive",
		"VOC":   "vocative",
	}
}
