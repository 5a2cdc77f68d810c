package recipe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/Smadden00/sophsAppAPI/domain"
	"github.com/Smadden00/sophsAppAPI/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// in-memory repository; Transaction snapshots state and restores it when
// fn fails, mirroring a database rollback
type fakeRecipeRepository struct {
	nextRecipeID int
	recipes      map[int]*entities.Recipe
	instructions []entities.RecipeInstruction
	ingredients  []entities.RecipeIngredient
	comments     []entities.RecipeComment
	ratings      []entities.RecipeRating
}

func newFakeRecipeRepository() *fakeRecipeRepository {
	return &fakeRecipeRepository{
		nextRecipeID: 1,
		recipes:      map[int]*entities.Recipe{},
	}
}

func (f *fakeRecipeRepository) snapshot() fakeRecipeRepository {
	copied := fakeRecipeRepository{
		nextRecipeID: f.nextRecipeID,
		recipes:      map[int]*entities.Recipe{},
		instructions: append([]entities.RecipeInstruction{}, f.instructions...),
		ingredients:  append([]entities.RecipeIngredient{}, f.ingredients...),
		comments:     append([]entities.RecipeComment{}, f.comments...),
		ratings:      append([]entities.RecipeRating{}, f.ratings...),
	}
	for id, r := range f.recipes {
		clone := *r
		copied.recipes[id] = &clone
	}
	return copied
}

func (f *fakeRecipeRepository) Transaction(_ context.Context, fn func(repo RecipeRepository) error) error {
	saved := f.snapshot()
	if err := fn(f); err != nil {
		*f = saved
		return err
	}
	return nil
}

func (f *fakeRecipeRepository) CreateRecipe(_ context.Context, recipe *entities.Recipe) error {
	recipe.RecipeID = f.nextRecipeID
	f.nextRecipeID++
	clone := *recipe
	f.recipes[recipe.RecipeID] = &clone
	return nil
}

func (f *fakeRecipeRepository) SetRecipeImageURL(_ context.Context, recipeID int, imageURL string) error {
	recipe, ok := f.recipes[recipeID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	recipe.RecImgURL = &imageURL
	return nil
}

func (f *fakeRecipeRepository) AddInstruction(_ context.Context, instruction *entities.RecipeInstruction) error {
	f.instructions = append(f.instructions, *instruction)
	return nil
}

func (f *fakeRecipeRepository) AddIngredient(_ context.Context, ingredient *entities.RecipeIngredient) error {
	f.ingredients = append(f.ingredients, *ingredient)
	return nil
}

func (f *fakeRecipeRepository) GetRecipes(_ context.Context) ([]*entities.Recipe, error) {
	out := make([]*entities.Recipe, 0, len(f.recipes))
	for _, r := range f.recipes {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRecipeRepository) GetRecipeByID(_ context.Context, recipeID int) (*entities.Recipe, error) {
	recipe, ok := f.recipes[recipeID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return recipe, nil
}

func (f *fakeRecipeRepository) GetInstructions(_ context.Context, recipeID int) ([]string, error) {
	byOrder := map[int]string{}
	for _, ins := range f.instructions {
		if ins.RecipeID == recipeID {
			byOrder[ins.InstructionOrder] = ins.Instruction
		}
	}
	out := make([]string, 0, len(byOrder))
	for i := 0; i < len(byOrder); i++ {
		out = append(out, byOrder[i])
	}
	return out, nil
}

func (f *fakeRecipeRepository) GetIngredients(_ context.Context, recipeID int) ([]string, error) {
	var out []string
	for _, ing := range f.ingredients {
		if ing.RecipeID == recipeID {
			out = append(out, ing.Ingredient)
		}
	}
	return out, nil
}

func (f *fakeRecipeRepository) GetComments(_ context.Context, recipeID int) ([]string, error) {
	var out []string
	for _, c := range f.comments {
		if c.RecipeID == recipeID {
			out = append(out, c.Comment)
		}
	}
	return out, nil
}

func (f *fakeRecipeRepository) AddComment(_ context.Context, comment *entities.RecipeComment) error {
	f.comments = append(f.comments, *comment)
	return nil
}

func (f *fakeRecipeRepository) UpsertRating(_ context.Context, rating *entities.RecipeRating) error {
	for i, existing := range f.ratings {
		if existing.RecipeID == rating.RecipeID && existing.UserEncrypted == rating.UserEncrypted {
			f.ratings[i].Rating = rating.Rating
			return nil
		}
	}
	f.ratings = append(f.ratings, *rating)
	return nil
}

func (f *fakeRecipeRepository) GetUsersRating(_ context.Context, recipeID int, userTag string) (int, error) {
	for _, r := range f.ratings {
		if r.RecipeID == recipeID && r.UserEncrypted == userTag {
			return r.Rating, nil
		}
	}
	return 0, nil
}

func (f *fakeRecipeRepository) AverageRating(_ context.Context, recipeID int) (*float64, error) {
	var sum, count float64
	for _, r := range f.ratings {
		if r.RecipeID == recipeID {
			sum += float64(r.Rating)
			count++
		}
	}
	if count == 0 {
		return nil, nil
	}
	avg := math.Round(sum/count*10) / 10
	return &avg, nil
}

type fakeS3 struct {
	bucket     string
	region     string
	uploads    []string
	failUpload bool
}

func newFakeS3() *fakeS3 {
	return &fakeS3{bucket: "sophs-menu-imgs", region: "us-east-1"}
}

func (f *fakeS3) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error) {
	if f.failUpload {
		return "", errors.New("s3 unavailable")
	}
	key := fmt.Sprintf("%s/%s.jpg", folder, fileName)
	f.uploads = append(f.uploads, key)
	return key, nil
}

func (f *fakeS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error) {
	return objectKey, nil
}

func (f *fakeS3) DeleteFile(objectKey string) error { return nil }

func (f *fakeS3) PresignUpload(objectKey string, contentType string) (string, error) {
	return "https://presigned.example/" + objectKey, nil
}

func (f *fakeS3) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", f.bucket, f.region, objectKey)
}

func (f *fakeS3) GetObjectKeyFromLink(link string) string {
	prefix := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", f.bucket, f.region)
	return strings.TrimPrefix(link, prefix)
}

func imageFile() *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: "dish.jpg",
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/jpeg"}},
	}
}

func validCreateRequest() domain.CreateRecipeRequest {
	return domain.CreateRecipeRequest{
		RecipeName:    "Spaghetti Carbonara",
		Ingredients:   []string{"a", "b"},
		PrepTimeInMin: json.Number("30"),
		Meal:          "dinner",
		Instructions:  []string{"step1", "step2"},
		Image:         imageFile(),
	}
}

const testTag = "2f0c1d9a2f0c1d9a2f0c1d9a2f0c1d9a2f0c1d9a2f0c1d9a2f0c1d9a2f0c1d9a"

func TestCreateRecipeWritesAllRowsInOrder(t *testing.T) {
	repo := newFakeRecipeRepository()
	s3 := newFakeS3()
	svc := NewRecipeService(repo, s3, "")

	res, err := svc.CreateRecipe(context.Background(), validCreateRequest(), testTag)
	require.NoError(t, err)
	require.NotZero(t, res.RecipeID)

	recipe := repo.recipes[res.RecipeID]
	require.NotNil(t, recipe)
	assert.Equal(t, testTag, recipe.UserEncrypted)
	require.NotNil(t, recipe.SophSubmitted)
	assert.False(t, *recipe.SophSubmitted)
	require.NotNil(t, recipe.RecImgURL)
	assert.Equal(t, fmt.Sprintf("https://sophs-menu-imgs.s3.us-east-1.amazonaws.com/recipes/%d.jpg", res.RecipeID), *recipe.RecImgURL)

	require.Len(t, repo.instructions, 2)
	assert.Equal(t, 0, repo.instructions[0].InstructionOrder)
	assert.Equal(t, "step1", repo.instructions[0].Instruction)
	assert.Equal(t, 1, repo.instructions[1].InstructionOrder)
	assert.Equal(t, "step2", repo.instructions[1].Instruction)

	assert.Len(t, repo.ingredients, 2)
	for _, ing := range repo.ingredients {
		assert.Equal(t, res.RecipeID, ing.RecipeID)
	}
}

func TestCreateRecipeRejectsEmptyIngredients(t *testing.T) {
	repo := newFakeRecipeRepository()
	svc := NewRecipeService(repo, newFakeS3(), "")

	req := validCreateRequest()
	req.Ingredients = nil

	_, err := svc.CreateRecipe(context.Background(), req, testTag)
	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "ingredients", validationErr.Field)

	assert.Empty(t, repo.recipes)
	assert.Empty(t, repo.instructions)
	assert.Empty(t, repo.ingredients)
}

func TestCreateRecipeRejectsBlankEntries(t *testing.T) {
	svc := NewRecipeService(newFakeRecipeRepository(), newFakeS3(), "")

	req := validCreateRequest()
	req.Instructions = []string{"step1", "   "}

	_, err := svc.CreateRecipe(context.Background(), req, testTag)
	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "instructions", validationErr.Field)
}

func TestCreateRecipeRejectsBadPrepTime(t *testing.T) {
	svc := NewRecipeService(newFakeRecipeRepository(), newFakeS3(), "")

	for _, prep := range []string{"-5", "abc", "1.5"} {
		req := validCreateRequest()
		req.PrepTimeInMin = json.Number(prep)

		_, err := svc.CreateRecipe(context.Background(), req, testTag)
		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr, "prep_time_in_min=%s", prep)
		assert.Equal(t, "prep_time_in_min", validationErr.Field)
	}
}

func TestCreateRecipeRequiresImage(t *testing.T) {
	svc := NewRecipeService(newFakeRecipeRepository(), newFakeS3(), "")

	req := validCreateRequest()
	req.Image = nil

	_, err := svc.CreateRecipe(context.Background(), req, testTag)
	assert.ErrorIs(t, err, domain.ErrMissingImageUpload)
}

func TestCreateRecipeAcceptsPreUploadedURL(t *testing.T) {
	repo := newFakeRecipeRepository()
	s3 := newFakeS3()
	base := "https://sophs-menu-imgs.s3.us-east-1.amazonaws.com/"
	svc := NewRecipeService(repo, s3, base)

	req := validCreateRequest()
	req.Image = nil
	req.RecImgURL = base + "recipes/" + testTag + "-abc.jpg"

	res, err := svc.CreateRecipe(context.Background(), req, testTag)
	require.NoError(t, err)
	require.NotNil(t, repo.recipes[res.RecipeID].RecImgURL)
	assert.Equal(t, req.RecImgURL, *repo.recipes[res.RecipeID].RecImgURL)
	assert.Empty(t, s3.uploads)
}

func TestCreateRecipeRejectsForeignImageHost(t *testing.T) {
	svc := NewRecipeService(newFakeRecipeRepository(), newFakeS3(), "https://sophs-menu-imgs.s3.us-east-1.amazonaws.com/")

	req := validCreateRequest()
	req.Image = nil
	req.RecImgURL = "https://evil.example/img.jpg"

	_, err := svc.CreateRecipe(context.Background(), req, testTag)
	assert.ErrorIs(t, err, domain.ErrImageHostRejected)
}

func TestCreateRecipeRollsBackOnUploadFailure(t *testing.T) {
	repo := newFakeRecipeRepository()
	s3 := newFakeS3()
	s3.failUpload = true
	svc := NewRecipeService(repo, s3, "")

	_, err := svc.CreateRecipe(context.Background(), validCreateRequest(), testTag)
	require.Error(t, err)

	assert.Empty(t, repo.recipes)
	assert.Empty(t, repo.instructions)
	assert.Empty(t, repo.ingredients)
}

func TestCreateRecipeTruncatesLongStrings(t *testing.T) {
	repo := newFakeRecipeRepository()
	svc := NewRecipeService(repo, newFakeS3(), "")

	req := validCreateRequest()
	req.RecipeName = strings.Repeat("n", 300)
	req.Meal = strings.Repeat("m", 60)
	req.Instructions = []string{strings.Repeat("i", 1200)}
	req.Ingredients = []string{strings.Repeat("g", 300)}

	res, err := svc.CreateRecipe(context.Background(), req, testTag)
	require.NoError(t, err)

	assert.Len(t, repo.recipes[res.RecipeID].RecipeName, 255)
	assert.Len(t, repo.recipes[res.RecipeID].Meal, 50)
	assert.Len(t, repo.instructions[0].Instruction, 1000)
	assert.Len(t, repo.ingredients[0].Ingredient, 255)
}

func TestAddCommentUnknownRecipe(t *testing.T) {
	svc := NewRecipeService(newFakeRecipeRepository(), newFakeS3(), "")

	err := svc.AddComment(context.Background(), 99, domain.AddCommentRequest{Comment: "tasty"}, testTag)
	assert.ErrorIs(t, err, domain.ErrInvalidRecipeID)
}

func TestAddCommentTruncatesAndTags(t *testing.T) {
	repo := newFakeRecipeRepository()
	svc := NewRecipeService(repo, newFakeS3(), "")

	res, err := svc.CreateRecipe(context.Background(), validCreateRequest(), testTag)
	require.NoError(t, err)

	err = svc.AddComment(context.Background(), res.RecipeID, domain.AddCommentRequest{Comment: strings.Repeat("c", 200)}, testTag)
	require.NoError(t, err)

	require.Len(t, repo.comments, 1)
	assert.Len(t, repo.comments[0].Comment, 150)
	assert.Equal(t, testTag, repo.comments[0].UserEncrypted)
}

func TestSubmitRatingUpserts(t *testing.T) {
	repo := newFakeRecipeRepository()
	svc := NewRecipeService(repo, newFakeS3(), "")

	require.NoError(t, svc.SubmitRating(context.Background(), 1, domain.SubmitRatingRequest{Rating: 3}, testTag))
	require.NoError(t, svc.SubmitRating(context.Background(), 1, domain.SubmitRatingRequest{Rating: 5}, testTag))

	require.Len(t, repo.ratings, 1)
	assert.Equal(t, 5, repo.ratings[0].Rating)
}

func TestSubmitRatingRejectsOutOfRange(t *testing.T) {
	svc := NewRecipeService(newFakeRecipeRepository(), newFakeS3(), "")

	for _, rating := range []int{0, 6, -1} {
		err := svc.SubmitRating(context.Background(), 1, domain.SubmitRatingRequest{Rating: rating}, testTag)
		assert.ErrorIs(t, err, domain.ErrInvalidRating)
	}
}

func TestGetUsersRatingDefaultsToZero(t *testing.T) {
	svc := NewRecipeService(newFakeRecipeRepository(), newFakeS3(), "")

	res, err := svc.GetUsersRating(context.Background(), 42, testTag)
	require.NoError(t, err)
	assert.Equal(t, 0, res.UsersRating)
}

func TestGetRecipeDetailAverages(t *testing.T) {
	repo := newFakeRecipeRepository()
	svc := NewRecipeService(repo, newFakeS3(), "")

	created, err := svc.CreateRecipe(context.Background(), validCreateRequest(), testTag)
	require.NoError(t, err)

	detail, err := svc.GetRecipeDetail(context.Background(), created.RecipeID)
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Nil(t, detail.AverageRating)
	assert.Equal(t, []string{"step1", "step2"}, detail.Instructions)

	require.NoError(t, svc.SubmitRating(context.Background(), created.RecipeID, domain.SubmitRatingRequest{Rating: 4}, testTag))
	require.NoError(t, svc.SubmitRating(context.Background(), created.RecipeID, domain.SubmitRatingRequest{Rating: 5}, "other-user-tag"))

	detail, err = svc.GetRecipeDetail(context.Background(), created.RecipeID)
	require.NoError(t, err)
	require.NotNil(t, detail.AverageRating)
	assert.InDelta(t, 4.5, *detail.AverageRating, 0.001)
}

func TestGetRecipeDetailUnknownIsNil(t *testing.T) {
	svc := NewRecipeService(newFakeRecipeRepository(), newFakeS3(), "")

	detail, err := svc.GetRecipeDetail(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, detail)
}
