package entities

type Recipe struct {
	RecipeID      int     `gorm:"column:recipe_id;primaryKey;autoIncrement" json:"recipe_id"`
	RecipeName    string  `gorm:"column:recipe_name;type:varchar(255);not null" json:"recipe_name"`
	UserEncrypted string  `gorm:"column:user_encrypted;type:varchar(64);not null;index" json:"user_encrypted"`
	PrepTimeInMin int     `gorm:"column:prep_time_in_min;not null" json:"prep_time_in_min"`
	Meal          string  `gorm:"column:meal;type:varchar(50)" json:"meal"`
	RecImgURL     *string `gorm:"column:rec_img_url" json:"rec_img_url"`
	SophSubmitted *bool   `gorm:"column:soph_submitted" json:"soph_submitted"`
}

func (Recipe) TableName() string { return "recipes" }

type RecipeInstruction struct {
	InstructionID    int    `gorm:"column:instruction_id;primaryKey;autoIncrement" json:"instruction_id"`
	RecipeID         int    `gorm:"column:recipe_id;not null;index" json:"recipe_id"`
	InstructionOrder int    `gorm:"column:instruction_order;not null" json:"instruction_order"`
	Instruction      string `gorm:"column:instruction;type:varchar(1000);not null" json:"instruction"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
}

func (RecipeInstruction) TableName() string { return "recipe_instructions" }

type RecipeIngredient struct {
	IngredientID int    `gorm:"column:ingredient_id;primaryKey;autoIncrement" json:"ingredient_id"`
	RecipeID     int    `gorm:"column:recipe_id;not null;index" json:"recipe_id"`
	Ingredient   string `gorm:"column:ingredient;type:varchar(255);not null" json:"ingredient"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
}

func (RecipeIngredient) TableName() string { return "recipe_ingredients" }

type RecipeComment struct {
	CommentID     int    `gorm:"column:comment_id;primaryKey;autoIncrement" json:"comment_id"`
	RecipeID      int    `gorm:"column:recipe_id;not null;index" json:"recipe_id"`
	Comment       string `gorm:"column:comment;type:varchar(150);not null" json:"comment"`
	UserEncrypted string `gorm:"column:user_encrypted;type:varchar(64);not null" json:"user_encrypted"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
}

// Postgres lowercases unquoted identifiers, the production table is named
// without an underscore.
func (RecipeComment) TableName() string { return "recipescomments" }

type RecipeRating struct {
	RatingID      int    `gorm:"column:rating_id;primaryKey;autoIncrement" json:"rating_id"`
	RecipeID      int    `gorm:"column:recipe_id;not null;uniqueIndex:unique_user_recipe_rating;index:idx_recipe_ratings_recipe_id" json:"recipe_id"`
	UserEncrypted string `gorm:"column:user_encrypted;type:varchar(64);not null;uniqueIndex:unique_user_recipe_rating;index:idx_recipe_ratings_user" json:"user_encrypted"`
	Rating        int    `gorm:"column:rating;type:smallint;not null" json:"rating"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
}

func (RecipeRating) TableName() string { return "recipe_ratings" }
