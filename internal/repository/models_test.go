package repository_test

import (
	"sync"

	"workoutlog/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm/schema"
)

var _ = Describe("Models", func() {
	var (
		userSchema    *schema.Schema
		workoutSchema *schema.Schema
	)

	BeforeEach(func() {
		cache := &sync.Map{}
		var err error

		userSchema, err = schema.Parse(&repository.User{}, cache, schema.NamingStrategy{})
		Expect(err).NotTo(HaveOccurred())
		workoutSchema, err = schema.Parse(&repository.Workout{}, cache, schema.NamingStrategy{})
		Expect(err).NotTo(HaveOccurred())
	})

	It("should cascade user deletion to workouts", func() {
		rel, ok := userSchema.Relationships.Relations["Workouts"]
		Expect(ok).To(BeTrue())

		constraint := rel.ParseConstraint()
		Expect(constraint).NotTo(BeNil())
		Expect(constraint.Schema.Table).To(Equal("workouts"))
		Expect(constraint.ReferenceSchema.Table).To(Equal("users"))
		Expect(constraint.ForeignKeys).To(HaveLen(1))
		Expect(constraint.ForeignKeys[0].DBName).To(Equal("user_id"))
		Expect(constraint.OnDelete).To(Equal("CASCADE"))
	})

	It("should require unique usernames and emails", func() {
		unique := []string{}
		for _, index := range userSchema.ParseIndexes() {
			if index.Class == "UNIQUE" && len(index.Fields) == 1 {
				unique = append(unique, index.Fields[0].DBName)
			}
		}
		Expect(unique).To(ConsistOf("username", "email"))
	})

	It("should store caller supplied workout strings without a length limit", func() {
		for _, column := range []string{"exercise_id", "exercise_name", "workout_timestamp"} {
			field := workoutSchema.LookUpField(column)
			Expect(field).NotTo(BeNil(), column)
			Expect(string(field.DataType)).To(Equal("text"), column)
		}
		Expect(string(workoutSchema.LookUpField("sets_data").DataType)).To(Equal("jsonb"))
	})
})
