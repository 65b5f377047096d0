package analyzer

// stopwords is the fixed French stopword set. Entries are stored in their
// cleaned form (lowercase, accent-folded) because the tokenizer only ever
// sees cleaned tokens.
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range stopwordList {
		stopwords[w] = struct{}{}
	}
}

var stopwordList = []string{
	// Articles and determiners
	"le", "la", "les", "un", "une", "des", "du", "de", "au", "aux",
	// Conjunctions
	"et", "ou", "mais", "donc", "or", "ni", "car",
	// Negation and degree
	"ne", "pas", "plus", "moins", "tres", "trop", "assez", "peu",
	"beaucoup", "bien", "mieux",
	// Personal pronouns
	"je", "tu", "il", "elle", "on", "nous", "vous", "ils", "elles",
	"me", "te", "se", "lui", "leur", "eux", "moi", "toi", "soi",
	// Demonstratives
	"ce", "cet", "cette", "ces", "ca", "cela", "celui", "celle", "ceux", "celles",
	// Relatives and interrogatives
	"qui", "que", "quoi", "dont", "quand", "comme", "si",
	// Indefinites
	"tout", "tous", "toute", "toutes", "autre", "autres", "meme", "memes",
	"plusieurs", "quelques", "chaque", "aucun", "aucune", "certains", "certaines",
	// Adverbs and connectors
	"aussi", "encore", "deja", "alors", "ainsi", "apres", "avant",
	"cependant", "pourtant", "toutefois", "enfin", "ensuite", "puis", "notamment",
	// Prepositions
	"avec", "sans", "sous", "sur", "dans", "entre", "vers", "chez",
	"pour", "par", "pendant", "depuis", "contre", "selon",
	// Common verb forms (etre, avoir, faire, modals)
	"etre", "avoir", "faire", "est", "sont", "etait", "etaient",
	"sera", "seront", "suis", "sommes", "etes", "soit", "fut",
	"ont", "avait", "avaient", "aura", "auront", "avons", "avez", "ai", "eu",
	"fait", "peut", "peuvent", "pouvait", "doit", "doivent", "va", "vont",
	"etant", "ayant",
	// Possessives
	"mon", "ton", "son", "ma", "ta", "sa", "mes", "tes", "ses",
	"notre", "votre", "nos", "vos", "leurs",
	// Misc
	"oui", "non", "voici", "voila",
}
