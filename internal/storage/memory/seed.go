package memory

import (
	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/skypro/skyshop/internal/domain/article"
	"github.com/skypro/skyshop/internal/domain/product"
)

// Seed ids are fixed so repeated runs and test suites see the same
// identifiers.
var (
	LaptopID     = uuid.MustParse("0b4f4f63-4a44-4b47-9f53-3b5cf9e1a001")
	PhoneID      = uuid.MustParse("0b4f4f63-4a44-4b47-9f53-3b5cf9e1a002")
	HeadphonesID = uuid.MustParse("0b4f4f63-4a44-4b47-9f53-3b5cf9e1a003")
	TabletID     = uuid.MustParse("0b4f4f63-4a44-4b47-9f53-3b5cf9e1a004")
	CableID      = uuid.MustParse("0b4f4f63-4a44-4b47-9f53-3b5cf9e1a005")
	MouseID      = uuid.MustParse("0b4f4f63-4a44-4b47-9f53-3b5cf9e1a006")

	LaptopArticleID     = uuid.MustParse("9d1a6c0e-70f5-4f2b-8c3d-6f2a9e4cb101")
	HeadphonesArticleID = uuid.MustParse("9d1a6c0e-70f5-4f2b-8c3d-6f2a9e4cb102")
	GuideArticleID      = uuid.MustParse("9d1a6c0e-70f5-4f2b-8c3d-6f2a9e4cb103")
)

// seed fills the store with the reference dataset: two simple, two
// discounted, and two fix-price products, plus three articles.
func (c *Catalog) seed() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	laptop, err := product.NewSimple(LaptopID, "Ноутбук Lenovo IdeaPad", 75000)
	if err != nil {
		return errors.Wrap(err, "laptop")
	}
	phone, err := product.NewSimple(PhoneID, "Смартфон Samsung Galaxy", 35000)
	if err != nil {
		return errors.Wrap(err, "phone")
	}
	headphones, err := product.NewDiscounted(HeadphonesID, "Беспроводные наушники Sony", 20000, 15)
	if err != nil {
		return errors.Wrap(err, "headphones")
	}
	tablet, err := product.NewDiscounted(TabletID, "Планшет Apple iPad Pro", 80000, 10)
	if err != nil {
		return errors.Wrap(err, "tablet")
	}
	cable, err := product.NewFixPrice(CableID, "USB-C кабель")
	if err != nil {
		return errors.Wrap(err, "cable")
	}
	mouse, err := product.NewFixPrice(MouseID, "Игровая мышь Razer")
	if err != nil {
		return errors.Wrap(err, "mouse")
	}

	for _, p := range []product.Product{laptop, phone, headphones, tablet, cable, mouse} {
		c.putProduct(p)
	}

	laptopArticle, err := article.New(LaptopArticleID,
		"Обзор ноутбука Lenovo IdeaPad",
		"Ноутбук Lenovo IdeaPad обладает мощным процессором Intel Core i7 и длительным временем работы от батареи.")
	if err != nil {
		return errors.Wrap(err, "laptop article")
	}
	headphonesArticle, err := article.New(HeadphonesArticleID,
		"Тест беспроводных наушников Sony",
		"Наушники Sony показали превосходное качество звука и удобную посадку. Шумоподавление работает отлично.")
	if err != nil {
		return errors.Wrap(err, "headphones article")
	}
	guide, err := article.New(GuideArticleID,
		"Как выбрать электронику",
		"При выборе электроники обращайте внимание на характеристики, бренд и отзывы покупателей.")
	if err != nil {
		return errors.Wrap(err, "guide article")
	}

	for _, a := range []*article.Article{laptopArticle, headphonesArticle, guide} {
		c.putArticle(a)
	}
	return nil
}
