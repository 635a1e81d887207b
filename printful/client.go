package printful

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"sync"
)

const defaultBaseURL = "https://api.printful.com"

// Client calls the Printful store API. The catalog is mirrored read-only;
// only product listing and per-product detail are needed.
type Client struct {
	BaseURL    string
	token      string
	httpClient *http.Client
}

func New(token string) *Client {
	return &Client{
		BaseURL:    defaultBaseURL,
		token:      token,
		httpClient: &http.Client{},
	}
}

// StoreProduct is a top-level sync product as listed by /store/products.
type StoreProduct struct {
	ID           int64  `json:"id"`
	ExternalID   string `json:"external_id"`
	Name         string `json:"name"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// SyncVariant is one size/color/SKU combination of a store product.
type SyncVariant struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	RetailPrice string `json:"retail_price"`
	SKU         string `json:"sku"`
}

type productDetail struct {
	SyncProduct  StoreProduct  `json:"sync_product"`
	SyncVariants []SyncVariant `json:"sync_variants"`
}

type listResponse struct {
	Result []StoreProduct `json:"result"`
}

type detailResponse struct {
	Result *productDetail `json:"result"`
}

// Variant is the trimmed variant shape returned to the storefront.
type Variant struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
	SKU   string `json:"sku"`
}

// CatalogProduct is a flattened store product: the first variant's retail
// price stands in as the representative price.
type CatalogProduct struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	ImageURL      string    `json:"image_url"`
	Price         string    `json:"price"`
	IsAvailable   bool      `json:"is_available"`
	IsSale        bool      `json:"is_sale"`
	OriginalPrice *float64  `json:"original_price"`
	PrintfulID    int64     `json:"printful_id"`
	ExternalID    string    `json:"external_id"`
	Variants      []Variant `json:"variants"`
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("printful API error (%d): %s", resp.StatusCode, string(body))
	}
	return json.Unmarshal(body, out)
}

// ListProducts fetches all store products and enriches each with variant
// detail in parallel. Products whose detail fetch fails are dropped from
// the result set rather than failing the whole listing.
func (c *Client) ListProducts(ctx context.Context) ([]CatalogProduct, error) {
	var list listResponse
	if err := c.getJSON(ctx, "/store/products", &list); err != nil {
		return nil, err
	}

	enriched := make([]*CatalogProduct, len(list.Result))
	var wg sync.WaitGroup
	for i, product := range list.Result {
		wg.Add(1)
		go func(i int, product StoreProduct) {
			defer wg.Done()

			var detail detailResponse
			path := fmt.Sprintf("/store/products/%d", product.ID)
			if err := c.getJSON(ctx, path, &detail); err != nil {
				log.Printf("printful: dropping product %d: %v", product.ID, err)
				return
			}
			if detail.Result == nil {
				return
			}

			variants := detail.Result.SyncVariants
			price := "0.00"
			if len(variants) > 0 {
				if parsed, err := strconv.ParseFloat(variants[0].RetailPrice, 64); err == nil {
					price = strconv.FormatFloat(parsed, 'f', 2, 64)
				}
			}

			out := &CatalogProduct{
				ID:          strconv.FormatInt(product.ID, 10),
				Title:       product.Name,
				ImageURL:    product.ThumbnailURL,
				Price:       price,
				IsAvailable: true,
				PrintfulID:  product.ID,
				ExternalID:  product.ExternalID,
				Variants:    make([]Variant, 0, len(variants)),
			}
			for _, v := range variants {
				out.Variants = append(out.Variants, Variant{
					ID:    v.ID,
					Name:  v.Name,
					Price: v.RetailPrice,
					SKU:   v.SKU,
				})
			}
			enriched[i] = out
		}(i, product)
	}
	wg.Wait()

	products := make([]CatalogProduct, 0, len(enriched))
	for _, p := range enriched {
		if p != nil {
			products = append(products, *p)
		}
	}
	return products, nil
}
