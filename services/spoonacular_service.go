package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"
)

// SpoonacularService is the client for the external recipe provider. All
// descriptive data for external recipes is fetched live; nothing is cached
// or persisted locally.
type SpoonacularService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewSpoonacularService initializes the SpoonacularService with credentials and HTTP client
func NewSpoonacularService() *SpoonacularService {
	return &SpoonacularService{
		apiKey:  os.Getenv("SPOONACULAR_API_KEY"),
		baseURL: "https://api.spoonacular.com/recipes",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *SpoonacularService) getJSON(u string, out interface{}) error {
	resp, err := s.client.Get(u)
	if err != nil {
		return fmt.Errorf("failed to call Spoonacular: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Spoonacular response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("spoonacular API error %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse Spoonacular JSON: %w", err)
	}
	return nil
}

// providerRecipe mirrors the provider's information payload.
type providerRecipe struct {
	ID                  int    `json:"id"`
	Title               string `json:"title"`
	ReadyInMinutes      int    `json:"readyInMinutes"`
	Image               string `json:"image"`
	AggregateLikes      int    `json:"aggregateLikes"`
	Vegan               bool   `json:"vegan"`
	Vegetarian          bool   `json:"vegetarian"`
	GlutenFree          bool   `json:"glutenFree"`
	Servings            int    `json:"servings"`
	Summary             string `json:"summary"`
	ExtendedIngredients []struct {
		OriginalName string  `json:"originalName"`
		Amount       float64 `json:"amount"`
		Unit         string  `json:"unit"`
	} `json:"extendedIngredients"`
	AnalyzedInstructions []struct {
		Steps []struct {
			Number int    `json:"number"`
			Step   string `json:"step"`
		} `json:"steps"`
	} `json:"analyzedInstructions"`
}

func (p *providerRecipe) preview() RecipePreview {
	return RecipePreview{
		ID:             strconv.Itoa(p.ID),
		Title:          p.Title,
		ReadyInMinutes: p.ReadyInMinutes,
		Image:          p.Image,
		Popularity:     p.AggregateLikes,
		Vegan:          p.Vegan,
		Vegetarian:     p.Vegetarian,
		GlutenFree:     p.GlutenFree,
	}
}

func (p *providerRecipe) information() *RecipeInformation {
	info := &RecipeInformation{
		RecipePreview: p.preview(),
		Servings:      p.Servings,
		Summary:       p.Summary,
	}
	for _, ing := range p.ExtendedIngredients {
		info.Ingredients = append(info.Ingredients, IngredientInfo{
			Name:     ing.OriginalName,
			Quantity: ing.Amount,
			Unit:     ing.Unit,
		})
	}
	if len(p.AnalyzedInstructions) > 0 {
		for _, step := range p.AnalyzedInstructions[0].Steps {
			info.Instructions = append(info.Instructions, step.Step)
		}
	}
	return info
}

// Information fetches one recipe's full record from the provider.
func (s *SpoonacularService) Information(recipeID string) (*RecipeInformation, error) {
	u := fmt.Sprintf("%s/%s/information?includeNutrition=false&apiKey=%s",
		s.baseURL, url.PathEscape(recipeID), s.apiKey)

	var pr providerRecipe
	if err := s.getJSON(u, &pr); err != nil {
		return nil, err
	}
	return pr.information(), nil
}

// Previews resolves a batch of provider ids. One failed lookup fails the
// whole batch; there is no partial-success aggregation.
func (s *SpoonacularService) Previews(recipeIDs []string) ([]RecipePreview, error) {
	out := make([]RecipePreview, 0, len(recipeIDs))
	for _, id := range recipeIDs {
		info, err := s.Information(id)
		if err != nil {
			return nil, err
		}
		out = append(out, info.RecipePreview)
	}
	return out, nil
}

// Random returns previews of randomly selected provider recipes.
func (s *SpoonacularService) Random(number int) ([]RecipePreview, error) {
	if number <= 0 {
		number = 3
	}
	u := fmt.Sprintf("%s/random?number=%d&apiKey=%s", s.baseURL, number, s.apiKey)

	var rr struct {
		Recipes []providerRecipe `json:"recipes"`
	}
	if err := s.getJSON(u, &rr); err != nil {
		return nil, err
	}
	if len(rr.Recipes) == 0 {
		return nil, ErrNoResults
	}

	out := make([]RecipePreview, 0, len(rr.Recipes))
	for i := range rr.Recipes {
		out = append(out, rr.Recipes[i].preview())
	}
	return out, nil
}

type SearchParams struct {
	Query       string
	Cuisine     string
	Diet        string
	Intolerance string
	Number      int
	Sort        string
}

// Search runs the provider's filtered search and returns the matching ids,
// to be resolved to previews by the caller.
func (s *SpoonacularService) Search(p SearchParams) ([]string, error) {
	if p.Number <= 0 {
		p.Number = 5
	}
	q := url.Values{}
	q.Set("query", p.Query)
	q.Set("cuisine", p.Cuisine)
	q.Set("diet", p.Diet)
	q.Set("intolerances", p.Intolerance)
	q.Set("number", strconv.Itoa(p.Number))
	q.Set("sort", p.Sort)
	q.Set("apiKey", s.apiKey)
	u := fmt.Sprintf("%s/complexSearch?%s", s.baseURL, q.Encode())

	var sr struct {
		Results []struct {
			ID int `json:"id"`
		} `json:"results"`
	}
	if err := s.getJSON(u, &sr); err != nil {
		return nil, err
	}
	if len(sr.Results) == 0 {
		return nil, ErrNoResults
	}

	ids := make([]string, 0, len(sr.Results))
	for _, r := range sr.Results {
		ids = append(ids, strconv.Itoa(r.ID))
	}
	return ids, nil
}

// AnalyzedInstructions passes the provider's step breakdown through verbatim.
func (s *SpoonacularService) AnalyzedInstructions(recipeID string) (json.RawMessage, error) {
	u := fmt.Sprintf("%s/%s/analyzedInstructions?apiKey=%s",
		s.baseURL, url.PathEscape(recipeID), s.apiKey)

	var raw json.RawMessage
	if err := s.getJSON(u, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
