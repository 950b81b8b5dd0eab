package taxonomy

import "sync"

// Built-in account type keys.
const (
	Individual             = "individual"
	BrandBusiness          = "brand_business"
	InfluencerPublicFigure = "influencer_public_figure"
	MediaNews              = "media_news"
	Bot                    = "bot"
	SpamScam               = "spam_scam"
	CreativeMeme           = "creative_meme"
)

var (
	defaultTaxonomy *Taxonomy
	defaultOnce     sync.Once
)

// Default returns the built-in taxonomy. It is built once and shared.
func Default() *Taxonomy {
	defaultOnce.Do(func() {
		defaultTaxonomy = mustNew(DefaultConfig().AccountTypes...)
	})
	return defaultTaxonomy
}

// DefaultConfig returns a fresh copy of the built-in table in file form.
func DefaultConfig() *Config {
	return &Config{
		AccountTypes: []AccountTypeConfig{
			individualAccounts(),
			{
				Name:   BrandBusiness,
				Weight: 0.10,
				Personas: []string{
					// local / small business
					"family_owned_italian_restaurant",
					"indie_bookstore_fighting_amazon",
					"craft_brewery_with_attitude",
					"struggling_yoga_studio",
					"overpriced_organic_juice_bar",
					// professional services
					"pretentious_marketing_agency",
					"desperate_real_estate_agent",
					"small_town_law_firm",
					"boutique_wedding_planning",
					// tech / online
					"failed_crypto_startup",
					"boring_b2b_saas_company",
					"dropshipping_get_rich_scheme",
					// retail / e-commerce
					"knockoff_luxury_fashion_brand",
					"artisanal_soap_making_business",
					"overpriced_pet_accessories_shop",
				},
				Modifiers: []Category{
					{Name: "brand_voice", Options: []string{"professional_corporate", "casual_approachable", "edgy_provocative", "wholesome_family_friendly", "trendy_hip", "authoritative_expert"}},
					{Name: "marketing_style", Options: []string{"hard_sell_pushy", "soft_sell_subtle", "educational_helpful", "entertaining_fun", "inspirational_motivational", "transparent_honest"}},
					{Name: "business_stage", Options: []string{"startup_scrappy", "established_confident", "struggling_desperate", "growing_excited", "corporate_polished"}},
					{Name: "target_audience", Options: []string{"young_millennials_gen_z", "families_parents", "professionals_business", "local_community", "niche_enthusiasts"}},
					{Name: "content_focus", Options: []string{"product_promotion", "behind_the_scenes", "industry_expertise", "customer_stories", "company_culture", "educational_content"}},
				},
			},
			{
				Name:   InfluencerPublicFigure,
				Weight: 0.05,
				Personas: []string{
					// content creators
					"thirst_trap_fitness_influencer",
					"wholesome_family_vlogger_with_secrets",
					"pretentious_minimalism_lifestyle_guru",
					"failed_musician_turned_podcaster",
					"controversial_political_commentator",
					// traditional celebrities
					"washed_up_reality_tv_star",
					"indie_film_actor_seeking_validation",
					"retired_athlete_selling_supplements",
					// experts / thought leaders
					"self_proclaimed_entrepreneur_guru",
					"académic_with_public_aspirations",
					"activist_nonprofit_leader",
					// niche
					"plant_mom_with_1000_houseplants",
					"urban_exploring_photographer",
					"competitive_eating_champion",
					"astrology_witch_tarot_reader",
				},
				Modifiers: []Category{
					{Name: "influencer_persona", Options: []string{"authentic_relatable", "aspirational_lifestyle", "educational_expert", "entertaining_funny", "controversial_edgy", "wholesome_inspirational"}},
					{Name: "content_style", Options: []string{"highly_polished", "casual_behind_scenes", "educational_tutorials", "opinion_commentary", "lifestyle_showcase", "interaction_community"}},
					{Name: "follower_relationship", Options: []string{"parasocial_intimate", "professional_distant", "community_leader", "celebrity_untouchable", "friend_next_door"}},
					{Name: "monetization_approach", Options: []string{"subtle_integrated", "obvious_promotional", "educational_value_first", "pure_entertainment", "activism_cause_driven"}},
				},
			},
			{
				Name:   MediaNews,
				Weight: 0.05,
				Personas: []string{
					// traditional media
					"dying_local_newspaper",
					"biased_cable_news_channel",
					"sports_talk_radio_hot_takes",
					"investigative_journalism_nonprofit",
					// digital media
					"clickbait_lifestyle_blog",
					"tech_news_site_with_attitude",
					"pop_culture_gossip_magazine",
					"financial_advice_youtube_channel",
					// podcasts
					"true_crime_obsessed_podcast",
					"bros_talking_fantasy_football",
					"interview_show_past_its_prime",
					// specialized
					"indie_music_discovery_blog",
					"food_review_instagram_account",
					"academic_research_publication",
					"community_events_calendar",
				},
				Modifiers: []Category{
					{Name: "editorial_stance", Options: []string{"neutral_objective", "left_leaning_bias", "right_leaning_bias", "sensationalist_clickbait", "investigative_serious", "entertainment_focused"}},
					{Name: "reporting_style", Options: []string{"breaking_news_urgent", "in_depth_analysis", "quick_updates", "opinion_commentary", "local_community_focus", "global_perspective"}},
					{Name: "audience_tone", Options: []string{"professional_formal", "conversational_accessible", "academic_detailed", "populist_simple", "elite_sophisticated"}},
					{Name: "content_priority", Options: []string{"politics_government", "sports_entertainment", "business_economy", "technology_innovation", "local_community", "human_interest"}},
				},
			},
			{
				Name:   Bot,
				Weight: 0.10,
				Personas: []string{
					// utility
					"weather_updates_bot",
					"public_transit_delay_alerts",
					"earthquake_emergency_notifications",
					"stock_price_tracking_bot",
					"cryptocurrency_price_alerts",
					// content
					"daily_motivational_quotes",
					"random_historical_facts",
					"word_of_the_day_bot",
					"astronomy_picture_daily",
					// engagement
					"automatic_birthday_wishes",
					"generic_compliment_generator",
					"fake_engagement_like_bot",
					// weird / broken
					"malfunctioning_poetry_generator",
					"gibberish_markov_chain_bot",
					"definitely_not_sentient_ai",
				},
				Modifiers: []Category{
					{Name: "bot_personality", Options: []string{"robotic_formal", "friendly_helpful", "quirky_weird", "broken_glitchy", "overly_enthusiastic", "minimalist_efficient"}},
					{Name: "response_pattern", Options: []string{"scheduled_regular", "triggered_reactive", "random_chaotic", "template_repetitive", "learning_adaptive"}},
					{Name: "content_type", Options: []string{"factual_information", "motivational_quotes", "alerts_notifications", "entertainment_jokes", "automated_responses"}},
				},
			},
			{
				Name:   SpamScam,
				Weight: 0.05,
				Personas: []string{
					// financial
					"crypto_pump_and_dump_scheme",
					"forex_trading_get_rich_quick",
					"fake_investment_opportunity",
					"mlm_essential_oils_hun",
					// romance / dating
					"catfish_looking_for_love",
					"fake_military_deployed_overseas",
					"widowed_billionaire_seeking_soulmate",
					// fake giveaways / contests
					"iphone_giveaway_click_bait",
					"fake_celebrity_endorsed_contest",
					"survey_scam_gift_card_promise",
					// identity / phishing
					"fake_bank_security_alert",
					"irs_tax_refund_phishing",
					"social_security_suspension_scam",
					// product
					"miracle_weight_loss_supplement",
					"fake_designer_handbag_seller",
					"counterfeit_electronics_dealer",
				},
				Modifiers: []Category{
					{Name: "scam_approach", Options: []string{"urgent_fear_based", "too_good_to_be_true", "fake_authority", "emotional_manipulation", "social_proof_fake", "technical_confusion"}},
					{Name: "writing_quality", Options: []string{"poor_grammar_obvious", "decent_convincing", "copy_paste_generic", "AI_generated_weird", "foreign_translation_errors"}},
					{Name: "target_vulnerability", Options: []string{"financial_desperation", "loneliness_romance", "tech_confusion", "greed_get_rich", "fear_authority"}},
				},
			},
			{
				Name:   CreativeMeme,
				Weight: 0.05,
				Personas: []string{
					// nostalgia
					"90s_kid_nostalgia_memes",
					"millennial_childhood_trauma_humor",
					"gen_z_making_fun_of_millennials",
					// pop culture
					"tv_show_recap_meme_account",
					"celebrity_gossip_meme_factory",
					"movie_quote_reaction_gifs",
					// relatable
					"adulting_is_hard_memes",
					"introvert_social_anxiety_jokes",
					"procrastination_self_roast_memes",
					// absurdist
					"surreal_deep_fried_memes",
					"oddly_specific_meme_generator",
					"chaotic_energy_shitposting",
					// wholesome
					"motivational_animal_pictures",
					"dad_joke_appreciation_society",
					"wholesome_relationship_goals_memes",
				},
				Modifiers: []Category{
					{Name: "humor_style", Options: []string{"absurdist_surreal", "relatable_everyday", "nostalgic_throwback", "pop_culture_reference", "self_deprecating", "wholesome_positive", "dark_edgy"}},
					{Name: "meme_format", Options: []string{"image_macro_text", "reaction_gif_style", "story_narrative", "list_enumeration", "observational_commentary"}},
					{Name: "target_demographic", Options: []string{"gen_z_zoomer", "millennial_nostalgia", "boomer_humor", "niche_community", "mainstream_broad_appeal"}},
					{Name: "content_freshness", Options: []string{"trending_current", "classic_timeless", "dead_horse_beating", "cutting_edge_new"}},
				},
			},
		},
	}
}

// individualAccounts is the only built-in type with persona overrides.
func individualAccounts() AccountTypeConfig {
	var (
		highSchool   = OneOf("high_school_dropout", "high_school_grad")
		inCollege    = OneOf("some_college", "college_degree")
		degreeOrMore = OneOf("college_degree", "graduate_degree")
		someDegree   = OneOf("college_degree", "some_college")
		midEducation = OneOf("college_degree", "some_college", "high_school_grad")
		oldEducation = OneOf("high_school_grad", "some_college", "college_degree")
		rightLeaning = OneOf("far_right_extremist", "conservative_republican")
	)

	return AccountTypeConfig{
		Name:   Individual,
		Weight: 0.60,
		Personas: []string{
			// teen / young adult
			"anxiety_ridden_high_schooler",
			"art_student_with_strong_opinions",
			"competitive_teenage_athlete",
			"theatre_kid_and_proud",
			// young professional
			"burned_out_corporate_lawyer",
			"enthusiastic_kindergarten_teacher",
			"struggling_freelance_designer",
			"tech_bro_with_startup_dreams",
			"nurse_working_night_shifts",
			// parents
			"helicopter_mom_of_twins",
			"single_dad_juggling_work_life",
			"homeschooling_parent_activist",
			// middle-aged
			"midlife_crisis_divorcee",
			"wine_mom_book_club_president",
			"weekend_warrior_mountain_biker",
			"conspiracy_theory_uncle",
			// older adults
			"facebook_grandma_oversharer",
			"retired_professor_still_teaching",
			"grumpy_boomer_hates_technology",
		},
		Modifiers: []Category{
			{Name: "communication_style", Options: []string{"casual_friendly", "sarcastic_witty", "wholesome_positive", "anxious_oversharing", "aggressive_confrontational", "cryptic_vague_posting"}},
			{Name: "posting_mood", Options: []string{"optimistic_upbeat", "pessimistic_complaining", "neutral_matter_of_fact", "emotional_dramatic", "humorous_joking", "philosophical_deep"}},
			{Name: "education_level", Options: []string{"high_school_dropout", "high_school_grad", "some_college", "college_degree", "graduate_degree", "trade_school"}},
			{Name: "political_leaning", Options: []string{"far_left_progressive", "liberal_democrat", "moderate_centrist", "conservative_republican", "far_right_extremist", "apolitical_avoids_politics"}},
			{Name: "life_stage", Options: []string{"teenager", "college_student", "young_professional", "parent", "middle_aged", "retired"}},
			{Name: "primary_topic", Options: []string{"work_career", "family_kids", "hobbies_interests", "politics_news", "personal_struggles", "achievements_bragging", "daily_mundane", "relationships_dating"}},
		},
		PersonaOverrides: map[string]map[string]Override{
			"anxiety_ridden_high_schooler": {
				"life_stage":          Fixed("teenager"),
				"education_level":     highSchool,
				"communication_style": Fixed("anxious_oversharing"),
			},
			"competitive_teenage_athlete": {
				"life_stage":      Fixed("teenager"),
				"education_level": highSchool,
				"primary_topic":   Fixed("achievements_bragging"),
			},
			"theatre_kid_and_proud": {
				"life_stage":      Fixed("teenager"),
				"education_level": highSchool,
			},
			"art_student_with_strong_opinions": {
				"life_stage":      Fixed("college_student"),
				"education_level": inCollege,
			},
			"burned_out_corporate_lawyer": {
				"life_stage":      Fixed("young_professional"),
				"education_level": Fixed("graduate_degree"),
			},
			"enthusiastic_kindergarten_teacher": {
				"life_stage":      Fixed("young_professional"),
				"education_level": degreeOrMore,
			},
			"struggling_freelance_designer": {
				"life_stage":      Fixed("young_professional"),
				"education_level": someDegree,
			},
			"tech_bro_with_startup_dreams": {
				"life_stage":      Fixed("young_professional"),
				"education_level": someDegree,
			},
			"nurse_working_night_shifts": {
				"life_stage":      Fixed("young_professional"),
				"education_level": someDegree,
			},
			"helicopter_mom_of_twins": {
				"life_stage":      Fixed("parent"),
				"primary_topic":   Fixed("family_kids"),
				"education_level": midEducation,
			},
			"single_dad_juggling_work_life": {
				"life_stage":      Fixed("parent"),
				"primary_topic":   Fixed("family_kids"),
				"education_level": midEducation,
			},
			"homeschooling_parent_activist": {
				"life_stage":      Fixed("parent"),
				"primary_topic":   Fixed("family_kids"),
				"education_level": midEducation,
			},
			"midlife_crisis_divorcee": {
				"life_stage":      Fixed("middle_aged"),
				"education_level": midEducation,
			},
			"wine_mom_book_club_president": {
				"life_stage":      Fixed("middle_aged"),
				"education_level": midEducation,
			},
			"weekend_warrior_mountain_biker": {
				"life_stage":      Fixed("middle_aged"),
				"education_level": midEducation,
			},
			"conspiracy_theory_uncle": {
				"life_stage":        Fixed("middle_aged"),
				"education_level":   midEducation,
				"political_leaning": rightLeaning,
			},
			"facebook_grandma_oversharer": {
				"life_stage":      Fixed("retired"),
				"education_level": oldEducation,
			},
			"retired_professor_still_teaching": {
				"life_stage":      Fixed("retired"),
				"education_level": Fixed("graduate_degree"),
			},
			"grumpy_boomer_hates_technology": {
				"life_stage":        Fixed("retired"),
				"education_level":   oldEducation,
				"political_leaning": rightLeaning,
			},
		},
	}
}
