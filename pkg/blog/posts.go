// Package blog holds the static blog content. Posts are compiled in,
// mirroring the site's editorial flow: add a Post here and redeploy.
package blog

// Post is a blog article. Content is markdown rendered by the client.
type Post struct {
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content,omitempty"`
	Date     string   `json:"date"`
	ReadTime string   `json:"readTime"`
	Author   string   `json:"author"`
	Tags     []string `json:"tags"`
}

var posts = []Post{
	{
		Slug:     "les-meilleures-pratiques-react-2024",
		Title:    "Les meilleures pratiques React en 2024",
		Excerpt:  "Les dernières tendances pour développer des applications React modernes et performantes.",
		Date:     "2024-03-12",
		ReadTime: "6 min",
		Author:   "Admin",
		Tags:     []string{"react", "frontend"},
		Content: `# Les meilleures pratiques React en 2024

React continue d'évoluer rapidement. Dans cet article, nous explorons les
approches recommandées pour 2024 :

## Server Components

- Réduction du JavaScript côté client
- Meilleure performance de rendu initial
- Intégration transparente avec le SSR

## Gestion d'état

Préférez les solutions légères et colocalisez l'état au plus près des
composants qui le consomment.
`,
	},
	{
		Slug:     "construire-une-api-go",
		Title:    "Construire une API REST en Go",
		Excerpt:  "Un tour d'horizon pragmatique : routeur, ORM, validation et tests.",
		Date:     "2024-05-02",
		ReadTime: "8 min",
		Author:   "Admin",
		Tags:     []string{"go", "backend"},
		Content: `# Construire une API REST en Go

Go est un excellent choix pour un backend simple et robuste.

## Les briques

1. Un routeur HTTP avec middleware
2. Un ORM pour la persistance
3. Une validation explicite des entrées
4. Des tests httptest sur chaque handler
`,
	},
	{
		Slug:     "securiser-un-espace-admin",
		Title:    "Sécuriser un espace admin",
		Excerpt:  "Sessions, mots de passe hachés et vérification à chaque endpoint.",
		Date:     "2024-06-20",
		ReadTime: "5 min",
		Author:   "Admin",
		Tags:     []string{"security"},
		Content: `# Sécuriser un espace admin

Quelques règles simples :

- Hacher les mots de passe (bcrypt), jamais de stockage en clair
- Vérifier la session sur chaque endpoint, pas seulement sur la page
- Rediriger vers la page de connexion plutôt que d'exposer un contenu vide
`,
	},
}

// All returns post summaries (no content), newest first.
func All() []Post {
	out := make([]Post, 0, len(posts))
	for i := len(posts) - 1; i >= 0; i-- {
		p := posts[i]
		p.Content = ""
		out = append(out, p)
	}
	return out
}

// BySlug returns the full post, or false when the slug is unknown.
func BySlug(slug string) (Post, bool) {
	for _, p := range posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return Post{}, false
}
