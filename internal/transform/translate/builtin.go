package translate

import "golang.org/x/text/language"

// Builtin returns a translator preloaded with the demo dictionaries
// used by the playground. Real deployments replace these with host
// supplied dictionaries.
func Builtin() *Translator {
	t := New()
	t.Add(Pair{From: language.English, To: language.Spanish}, Dictionary{
		"hello":   "hola",
		"world":   "mundo",
		"good":    "buenos",
		"morning": "días",
		"cat":     "gato",
		"dog":     "perro",
		"thanks":  "gracias",
		"please":  "por favor",
		"yes":     "sí",
		"no":      "no",
	})
	t.Add(Pair{From: language.English, To: language.French}, Dictionary{
		"hello":   "bonjour",
		"world":   "monde",
		"good":    "bon",
		"morning": "matin",
		"cat":     "chat",
		"dog":     "chien",
		"thanks":  "merci",
		"yes":     "oui",
		"no":      "non",
	})
	return t
}
