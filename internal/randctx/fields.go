package randctx

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmailExhausted is returned when a unique email cannot be drawn within
// the retry budget. Callers must surface it rather than shrink their output.
var ErrEmailExhausted = errors.New("unique email space exhausted")

const maxEmailAttempts = 100

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Christopher", "Lisa", "Daniel", "Nancy",
	"Matthew", "Betty", "Anthony", "Margaret", "Mark", "Sandra", "Donald", "Ashley",
	"Steven", "Dorothy", "Paul", "Kimberly", "Andrew", "Emily", "Joshua", "Donna",
	"Kenneth", "Michelle", "Kevin", "Carol", "Brian", "Amanda", "George", "Melissa",
	"Timothy", "Deborah", "Ronald", "Stephanie", "Edward", "Rebecca", "Jason", "Sharon",
	"Jeffrey", "Laura", "Ryan", "Cynthia", "Jacob", "Kathleen", "Gary", "Amy",
	"Nicholas", "Angela", "Eric", "Anna", "Jonathan", "Brenda", "Larry", "Pamela",
	"Justin", "Emma", "Scott", "Nicole", "Brandon", "Helen", "Benjamin", "Samantha",
	"Samuel", "Katherine", "Raymond", "Christine", "Gregory", "Debra", "Frank", "Rachel",
	"Alexander", "Carolyn", "Patrick", "Janet", "Jack", "Catherine", "Dennis", "Maria",
	"Tyler", "Diane", "Aaron", "Ruth", "Jose", "Julie", "Adam", "Olivia",
	"Nathan", "Joyce", "Henry", "Virginia", "Peter", "Victoria", "Zachary", "Kelly",
	"Douglas", "Lauren", "Harold", "Christina", "Albert", "Joan", "Carl", "Evelyn",
	"Arthur", "Judith", "Gerald", "Megan", "Roger", "Andrea", "Keith", "Cheryl",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
	"Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson",
	"White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker",
	"Young", "Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill",
	"Flores", "Green", "Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell",
	"Mitchell", "Carter", "Roberts", "Gomez", "Phillips", "Evans", "Turner", "Diaz",
	"Parker", "Cruz", "Edwards", "Collins", "Reyes", "Stewart", "Morris", "Morales",
	"Murphy", "Cook", "Rogers", "Gutierrez", "Ortiz", "Morgan", "Cooper", "Peterson",
	"Bailey", "Reed", "Kelly", "Howard", "Ramos", "Kim", "Cox", "Ward",
	"Richardson", "Watson", "Brooks", "Chavez", "Wood", "Bennett", "Gray", "Patel",
	"Mendoza", "Ruiz", "Hughes", "Price", "Alvarez", "Castillo", "Sanders", "Myers",
}

var emailDomains = []string{
	"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "protonmail.com",
	"icloud.com", "mail.com", "fastmail.com", "zoho.com", "aol.com",
	"example.com", "test.com", "company.org", "corp.net", "business.io",
}

var countries = []string{
	"United States", "Canada", "United Kingdom", "Germany", "France", "Japan",
	"Australia", "Brazil", "India", "Mexico", "Italy", "Spain", "Netherlands",
	"Sweden", "Norway", "Denmark", "Finland", "Poland", "Czech Republic",
	"Austria", "Switzerland", "Belgium", "Portugal", "Ireland", "New Zealand",
	"Singapore", "South Korea", "South Africa", "Argentina", "Chile",
}

var loremWords = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing", "elit",
	"sed", "do", "eiusmod", "tempor", "incididunt", "ut", "labore", "et", "dolore",
	"magna", "aliqua", "enim", "ad", "minim", "veniam", "quis", "nostrud",
	"exercitation", "ullamco", "laboris", "nisi", "aliquip", "ex", "ea", "commodo",
	"consequat", "duis", "aute", "irure", "in", "reprehenderit", "voluptate",
	"velit", "esse", "cillum", "fugiat", "nulla", "pariatur", "excepteur", "sint",
	"product", "service", "quality", "value", "shipping", "arrived", "works",
	"perfectly", "expected", "recommend", "packaging", "design", "material",
	"sturdy", "comfortable", "reliable", "fast", "great", "decent", "solid",
}

var productAdjectives = []string{
	"Ergonomic", "Sleek", "Rustic", "Intelligent", "Durable", "Compact",
	"Lightweight", "Premium", "Handcrafted", "Modern", "Practical", "Refined",
	"Incredible", "Fantastic", "Awesome", "Enormous", "Small", "Gorgeous",
}

var productMaterials = []string{
	"Steel", "Wooden", "Cotton", "Granite", "Leather", "Plastic", "Bamboo",
	"Aluminum", "Bronze", "Concrete", "Silk", "Linen", "Marble", "Rubber",
}

var productNouns = []string{
	"Chair", "Lamp", "Keyboard", "Bottle", "Backpack", "Wallet", "Watch",
	"Speaker", "Table", "Notebook", "Mug", "Headset", "Charger", "Blanket",
	"Organizer", "Stand", "Holder", "Kit",
}

const opaqueChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Name returns a synthetic "First Last" person name.
func (c *Context) Name() string {
	return c.Pick(firstNames) + " " + c.Pick(lastNames)
}

// UniqueEmail draws an email address not yet returned by this Context.
// Collisions are resolved by redrawing with a numeric suffix; if no unused
// address is found within the retry budget it returns ErrEmailExhausted.
func (c *Context) UniqueEmail() (string, error) {
	for attempt := 0; attempt < maxEmailAttempts; attempt++ {
		local := strings.ToLower(c.Pick(firstNames)) + "." + strings.ToLower(c.Pick(lastNames))
		if attempt > 0 {
			local = fmt.Sprintf("%s%d", local, c.rng.IntN(10000))
		}
		email := local + "@" + c.Pick(emailDomains)
		if _, taken := c.usedEmails[email]; !taken {
			c.usedEmails[email] = struct{}{}
			return email, nil
		}
	}
	return "", fmt.Errorf("after %d attempts: %w", maxEmailAttempts, ErrEmailExhausted)
}

// Phone returns a synthetic phone number.
func (c *Context) Phone() string {
	return fmt.Sprintf("+%d-%03d-%03d-%04d",
		1+c.rng.IntN(98), c.rng.IntN(1000), c.rng.IntN(1000), c.rng.IntN(10000))
}

// Country returns a country name from a fixed pool.
func (c *Context) Country() string {
	return c.Pick(countries)
}

// Sentence returns a capitalized sentence of n lorem-style words.
func (c *Context) Sentence(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = c.Pick(loremWords)
	}
	s := strings.Join(words, " ")
	return strings.ToUpper(s[:1]) + s[1:] + "."
}

// Paragraph returns sentences sentences of 5-14 words each.
func (c *Context) Paragraph(sentences int) string {
	parts := make([]string, sentences)
	for i := range parts {
		parts[i] = c.Sentence(5 + c.rng.IntN(10))
	}
	return strings.Join(parts, " ")
}

// ProductName returns a synthetic catalog item name.
func (c *Context) ProductName() string {
	return c.Pick(productAdjectives) + " " + c.Pick(productMaterials) + " " + c.Pick(productNouns)
}

// OpaqueString returns a random alphanumeric string of length in [min, max].
func (c *Context) OpaqueString(min, max int) string {
	n := min + c.rng.IntN(max-min+1)
	b := make([]byte, n)
	for i := range b {
		b[i] = opaqueChars[c.rng.IntN(len(opaqueChars))]
	}
	return string(b)
}
