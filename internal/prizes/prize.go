package prizes

// BlankImage is the sentinel image reference for prizes without one.
const BlankImage = "blank"

const imagesPath = "/static/images/"

// Prize is the reward for completing a training week. Immutable after
// construction.
type Prize struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// NewPrize builds a prize; an empty image name yields the blank sentinel,
// anything else resolves to the static images path.
func NewPrize(name, description, image string) Prize {
	imageRef := BlankImage
	if image != "" {
		imageRef = imagesPath + image
	}
	return Prize{
		Name:        name,
		Description: description,
		Image:       imageRef,
	}
}
